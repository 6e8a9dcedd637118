package class

// MjrTemplate - major that classifies errors related with the template
// registry, document loading and inheritance resolution.
var MjrTemplate Major

func registerTemplateClasses() {
	MjrTemplate = MustRegisterMajor("Template", "template registry, documents and inheritance issues")

	registerTemplateRegistry()
	registerTemplateDocument()
	registerTemplateInheritance()
}

/**

Template Registry

*/
var (
	// MnrTemplateRegistry is the 'MjrTemplate' minor error classification
	// on the template registry issues.
	MnrTemplateRegistry Minor

	// TemplateNotFound is the 'MjrTemplate', 'MnrTemplateRegistry' error
	// classification used when a template name is not registered.
	TemplateNotFound Class

	// TemplateAlreadyRegistered is the 'MjrTemplate', 'MnrTemplateRegistry'
	// error classification used when a template name is registered twice.
	TemplateAlreadyRegistered Class
)

func registerTemplateRegistry() {
	MnrTemplateRegistry = MjrTemplate.MustRegisterMinor("Registry", "template registry related issues")

	TemplateNotFound = MnrTemplateRegistry.MustRegisterIndex("Not Found", "template is not registered under given name").Class()
	TemplateAlreadyRegistered = MnrTemplateRegistry.MustRegisterIndex("Already Registered", "template name is already taken").Class()
}

/**

Template Document

*/
var (
	// MnrTemplateDocument is the 'MjrTemplate' minor error classification
	// on the template document issues.
	MnrTemplateDocument Minor

	// TemplateDocumentInvalid is the 'MjrTemplate', 'MnrTemplateDocument'
	// error classification used when a document entry is malformed.
	TemplateDocumentInvalid Class

	// TemplateDocumentRead is the 'MjrTemplate', 'MnrTemplateDocument'
	// error classification used when a document cannot be read or parsed.
	TemplateDocumentRead Class
)

func registerTemplateDocument() {
	MnrTemplateDocument = MjrTemplate.MustRegisterMinor("Document", "template document parsing issues")

	TemplateDocumentInvalid = MnrTemplateDocument.MustRegisterIndex("Invalid", "document entry doesn't match the template schema").Class()
	TemplateDocumentRead = MnrTemplateDocument.MustRegisterIndex("Read", "document cannot be read or parsed").Class()
}

/**

Template Inheritance

*/
var (
	// MnrTemplateInheritance is the 'MjrTemplate' minor error classification
	// on the template base chain issues.
	MnrTemplateInheritance Minor

	// TemplateInheritanceCycle is the 'MjrTemplate', 'MnrTemplateInheritance'
	// error classification used when a base chain revisits a name.
	TemplateInheritanceCycle Class

	// TemplateInheritanceKind is the 'MjrTemplate', 'MnrTemplateInheritance'
	// error classification used when a base chain roots at an unexpected kind.
	TemplateInheritanceKind Class
)

func registerTemplateInheritance() {
	MnrTemplateInheritance = MjrTemplate.MustRegisterMinor("Inheritance", "template base chain issues")

	TemplateInheritanceCycle = MnrTemplateInheritance.MustRegisterIndex("Cycle", "base chain revisits a template name").Class()
	TemplateInheritanceKind = MnrTemplateInheritance.MustRegisterIndex("Kind", "base chain roots at an unexpected template kind").Class()
}
