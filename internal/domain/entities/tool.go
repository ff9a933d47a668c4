package entities

// ParameterItem describes the element type of an array parameter.
type ParameterItem struct {
	Type string
}

type Parameter struct {
	Name        string
	Type        string
	Enum        []string
	Items       []ParameterItem
	Description string
	Required    bool
}

// Tool is the contract every agent-callable tool implements. Execute
// receives the tool-call arguments as a JSON string and returns a short
// human-readable summary.
type Tool interface {
	Name() string
	Description() string
	Configuration() map[string]string
	UpdateConfiguration(config map[string]string)
	FullDescription() string
	Parameters() []Parameter
	Execute(arguments string) (string, error)
}
