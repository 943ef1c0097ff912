package persona

// Built-in advisory board, in the order results are reported
var defaults = []Persona{
	{
		Name:   "CMO",
		Prompt: "You are a Chief Marketing Officer with expertise in go-to-market strategies, pricing models, and brand positioning.",
	},
	{
		Name:   "CTO",
		Prompt: "You are a Chief Technology Officer experienced in technology feasibility, software development, and scaling infrastructure.",
	},
	{
		Name:   "CFO",
		Prompt: "You are a Chief Financial Officer skilled in financial modeling, fundraising, and business projections.",
	},
	{
		Name:   "Legal Advisor",
		Prompt: "You are a legal expert specializing in M&A transactions, startup legal structures, and compliance for fundraising.",
	},
	{
		Name:   "Business Analyst",
		Prompt: "You are a business analyst focused on competitive research, market trends, and industry positioning.",
	},
}

// Default returns the built-in advisory board
func Default() *Set {
	s, err := New(defaults)
	if err != nil {
		panic(err)
	}
	return s
}
