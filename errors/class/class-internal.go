package class

// MjrInternal - major that classifies internal engine errors that should
// never surface during correct operation.
var MjrInternal Major

var (
	// MnrInternalCommon is the common 'MjrInternal' minor error classification.
	MnrInternalCommon Minor

	// InternalCommon is the common 'MjrInternal' error classification.
	InternalCommon Class
)

func registerInternalClasses() {
	MjrInternal = MustRegisterMajor("Internal", "internal engine failures")

	MnrInternalCommon = MjrInternal.MustRegisterMinor("Common", "common internal failures")
	InternalCommon = MnrInternalCommon.MustRegisterIndex("Failure", "unexpected internal failure").Class()
}
