package render

import (
	"fmt"
	"path"

	"github.com/chwjbn/gl2-demo/glib"
	"github.com/chwjbn/gl2-demo/glog"
)

const (
	positionAttrib = "vPosition"
	mvpUniform     = "mvp"
)

const defaultVertexShader = "attribute vec4 vPosition;\n" +
	"uniform mat4 mvp;\n" +
	"void main() {\n" +
	"  gl_Position = mvp*vPosition;\n" +
	"}\n"

const defaultFragmentShader = "precision mediump float;\n" +
	"void main() {\n" +
	"  gl_FragColor = vec4(0.0, 1.0, 0.0, 1.0);\n" +
	"}\n"

type ShaderSources struct {
	Vertex   string
	Fragment string
}

func DefaultShaderSources() ShaderSources {
	return ShaderSources{Vertex: defaultVertexShader, Fragment: defaultFragmentShader}
}

// LoadEffectSources reads <effectDir>/<effectName>/code.vert and code.frag.
// Any missing stage falls back to the built-in source.
func LoadEffectSources(effectDir string, effectName string) ShaderSources {

	xSources := DefaultShaderSources()

	if len(effectName) < 1 {
		return xSources
	}

	if xCode := readShaderCode(effectDir, effectName, "vert"); len(xCode) > 0 {
		xSources.Vertex = xCode
	} else {
		glog.WarnF("missing vertex code in effect=[%v], using built-in", effectName)
	}

	if xCode := readShaderCode(effectDir, effectName, "frag"); len(xCode) > 0 {
		xSources.Fragment = xCode
	} else {
		glog.WarnF("missing fragment code in effect=[%v], using built-in", effectName)
	}

	return xSources
}

func readShaderCode(effectDir string, effectName string, shaderType string) string {

	srcCode := ""

	codeFilePath := path.Join(effectDir, effectName, fmt.Sprintf("code.%s", shaderType))
	if !glib.FileExists(codeFilePath) {
		return srcCode
	}

	srcCode = glib.FileReadAllText(codeFilePath)

	return srcCode

}
