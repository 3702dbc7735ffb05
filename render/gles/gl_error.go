package gles

import "github.com/chwjbn/gl2-demo/glog"

// ErrorHook receives every GL error code drained after op.
type ErrorHook func(op string, code uint32)

func LogErrorHook(op string, code uint32) {
	glog.InfoF("after %s() glError (0x%x)", op, code)
}

// a lost context may report the same error forever
const maxDrainedErrors = 32

// CheckError drains the GL error queue. Codes never stop execution.
func CheckError(glCtx Context, op string, hook ErrorHook) {
	for i := 0; i < maxDrainedErrors; i++ {
		code := glCtx.GetError()
		if code == NO_ERROR {
			return
		}
		if hook != nil {
			hook(op, code)
		}
	}
}
