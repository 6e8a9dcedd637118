package class

// MjrGraph - major that classifies errors related with the circuit graph
// assembly.
var MjrGraph Major

func registerGraphClasses() {
	MjrGraph = MustRegisterMajor("Graph", "circuit graph assembly issues")

	registerGraphPort()
	registerGraphAssembly()
}

/**

Graph Port

*/
var (
	// MnrGraphPort is the 'MjrGraph' minor error classification on the
	// edge endpoint addressing issues.
	MnrGraphPort Minor

	// GraphPortNotFound is the 'MjrGraph', 'MnrGraphPort' error
	// classification used when an edge path segment doesn't resolve.
	GraphPortNotFound Class

	// GraphPortPath is the 'MjrGraph', 'MnrGraphPort' error classification
	// used when an edge path is syntactically malformed.
	GraphPortPath Class

	// GraphRoleMismatch is the 'MjrGraph', 'MnrGraphPort' error
	// classification used when an edge endpoint has the wrong variable role.
	GraphRoleMismatch Class
)

func registerGraphPort() {
	MnrGraphPort = MjrGraph.MustRegisterMinor("Port", "edge endpoint addressing issues")

	GraphPortNotFound = MnrGraphPort.MustRegisterIndex("Not Found", "edge path segment doesn't resolve").Class()
	GraphPortPath = MnrGraphPort.MustRegisterIndex("Path", "edge path is malformed").Class()
	GraphRoleMismatch = MnrGraphPort.MustRegisterIndex("Role Mismatch", "edge endpoint has the wrong variable role").Class()
}

/**

Graph Assembly

*/
var (
	// MnrGraphAssembly is the 'MjrGraph' minor error classification on the
	// assembled graph validation issues.
	MnrGraphAssembly Minor

	// GraphInputUnconnected is the 'MjrGraph', 'MnrGraphAssembly' error
	// classification used when a referenced input variable has no inbound
	// connection nor an explicit value.
	GraphInputUnconnected Class

	// GraphNodeInvalid is the 'MjrGraph', 'MnrGraphAssembly' error
	// classification used when a circuit node reference is not assemblable.
	GraphNodeInvalid Class

	// GraphOverrideInvalid is the 'MjrGraph', 'MnrGraphAssembly' error
	// classification used when an instantiation override doesn't address an
	// existing variable.
	GraphOverrideInvalid Class
)

func registerGraphAssembly() {
	MnrGraphAssembly = MjrGraph.MustRegisterMinor("Assembly", "assembled graph validation issues")

	GraphInputUnconnected = MnrGraphAssembly.MustRegisterIndex("Input Unconnected", "referenced input has no inbound connection").Class()
	GraphNodeInvalid = MnrGraphAssembly.MustRegisterIndex("Node Invalid", "circuit node reference is not assemblable").Class()
	GraphOverrideInvalid = MnrGraphAssembly.MustRegisterIndex("Override Invalid", "override doesn't address an existing variable").Class()
}
