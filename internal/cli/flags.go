package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile   string
	InputFile string
	BatchFile string
	ShowCodes bool

	// Index flags
	IndexPath string
	AddWords  bool
	Lookup    bool
	ListWords bool
	Remove    bool

	// Explain flags
	Explain       bool
	OpenAIModel   string
	ExplainMaxTok int
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		OpenAIModel:   "gpt-4o",
		ExplainMaxTok: 500,
	}
}
