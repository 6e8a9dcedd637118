package class

// MjrVariable - major that classifies errors related with the operator
// variable metadata resolution.
var MjrVariable Major

func registerVariableClasses() {
	MjrVariable = MustRegisterMajor("Variable", "operator variable metadata issues")

	registerVariableRole()
	registerVariableValue()
}

/**

Variable Role

*/
var (
	// MnrVariableRole is the 'MjrVariable' minor error classification on
	// the variable role resolution issues.
	MnrVariableRole Minor

	// VariableDefaultConflict is the 'MjrVariable', 'MnrVariableRole' error
	// classification used when incompatible role defaults meet across an
	// inheritance chain.
	VariableDefaultConflict Class

	// VariableDefaultInvalid is the 'MjrVariable', 'MnrVariableRole' error
	// classification used when a default sentinel cannot be parsed.
	VariableDefaultInvalid Class

	// VariableNotDeclared is the 'MjrVariable', 'MnrVariableRole' error
	// classification used when an equation references an undeclared symbol.
	VariableNotDeclared Class

	// VariableOutputCount is the 'MjrVariable', 'MnrVariableRole' error
	// classification used when an operator declares no or multiple outputs.
	VariableOutputCount Class

	// VariableOutputUnassigned is the 'MjrVariable', 'MnrVariableRole'
	// error classification used when the output variable is never assigned
	// by the operator equations.
	VariableOutputUnassigned Class
)

func registerVariableRole() {
	MnrVariableRole = MjrVariable.MustRegisterMinor("Role", "variable role resolution issues")

	VariableDefaultConflict = MnrVariableRole.MustRegisterIndex("Default Conflict", "incompatible role defaults across the inheritance chain").Class()
	VariableDefaultInvalid = MnrVariableRole.MustRegisterIndex("Default Invalid", "default sentinel cannot be parsed").Class()
	VariableNotDeclared = MnrVariableRole.MustRegisterIndex("Not Declared", "equation references an undeclared symbol").Class()
	VariableOutputCount = MnrVariableRole.MustRegisterIndex("Output Count", "operator must export exactly one output variable").Class()
	VariableOutputUnassigned = MnrVariableRole.MustRegisterIndex("Output Unassigned", "output variable is never assigned by the equations").Class()
}

/**

Variable Value

*/
var (
	// MnrVariableValue is the 'MjrVariable' minor error classification on
	// the variable value issues.
	MnrVariableValue Minor

	// VariableValueRequired is the 'MjrVariable', 'MnrVariableValue' error
	// classification used when a required constant has no value at
	// instantiation time.
	VariableValueRequired Class

	// VariableValueOutOfRange is the 'MjrVariable', 'MnrVariableValue'
	// error classification used when a resolved value violates the declared
	// allowed range.
	VariableValueOutOfRange Class

	// VariableRangeInvalid is the 'MjrVariable', 'MnrVariableValue' error
	// classification used when an allowed range expression cannot be parsed.
	VariableRangeInvalid Class
)

func registerVariableValue() {
	MnrVariableValue = MjrVariable.MustRegisterMinor("Value", "variable value issues")

	VariableValueRequired = MnrVariableValue.MustRegisterIndex("Required", "required constant has no value at instantiation").Class()
	VariableValueOutOfRange = MnrVariableValue.MustRegisterIndex("Out Of Range", "resolved value violates the allowed range").Class()
	VariableRangeInvalid = MnrVariableValue.MustRegisterIndex("Range Invalid", "allowed range expression cannot be parsed").Class()
}
