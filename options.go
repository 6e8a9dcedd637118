package rategraph

// InstantiateOptions collects the per-call settings of Instantiate.
type InstantiateOptions struct {
	// Values maps full variable paths onto the numeric values assigned
	// before validation, e.g. "WC/E/RateOp/tau": 2.0.
	Values map[string]float64
}

func newInstantiateOptions() *InstantiateOptions {
	return &InstantiateOptions{Values: map[string]float64{}}
}

// InstantiateOption is the function that changes the instantiate options.
type InstantiateOption func(o *InstantiateOptions)

// WithValue assigns 'value' to the variable at the full path 'path'
// within the instantiated circuit.
func WithValue(path string, value float64) InstantiateOption {
	return func(o *InstantiateOptions) {
		o.Values[path] = value
	}
}

// WithValues assigns every path to value entry of 'values' within the
// instantiated circuit.
func WithValues(values map[string]float64) InstantiateOption {
	return func(o *InstantiateOptions) {
		for path, value := range values {
			o.Values[path] = value
		}
	}
}
