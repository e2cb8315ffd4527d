package catalog

// seedCategories defines the four assessment categories in display order.
var seedCategories = []Category{
	{
		ID:          CategoryGovernance,
		Name:        "Governance & Oversight Controls",
		Tenet:       "Governance",
		Description: "Formal organizational structures and policy frameworks that establish human oversight mechanisms and decision protocols for AI development and deployment.",
		Blurb:       "Accountability frameworks and decision-making processes for responsible AI development oversight.",
	},
	{
		ID:          CategoryTechnical,
		Name:        "Technical & Security Controls",
		Tenet:       "Technical",
		Description: "Technical and engineering safeguards that secure AI systems and constrain model behaviors to ensure security, safety and content integrity.",
		Blurb:       "Security measures, model alignment techniques and technical safeguards for AI system integrity.",
	},
	{
		ID:          CategoryOperational,
		Name:        "Operational Process Controls",
		Tenet:       "Operational",
		Description: "Processes governing AI system deployment, usage, monitoring, incident handling and validation throughout the system lifecycle.",
		Blurb:       "Lifecycle processes covering testing, monitoring, incident response and continuous validation.",
	},
	{
		ID:          CategoryPrivacy,
		Name:        "Data Privacy & Protection Controls",
		Tenet:       "Privacy",
		Description: "Safeguards that protect intellectual property, personal data and sensitive information when using AI systems in development processes.",
		Blurb:       "IP and personal data protection through privacy controls and secure AI implementation practices.",
	},
}

// seedQuestions defines the eight assessment questions in display order.
// Each category contributes exactly two, and each question's options are
// ordered lowest-risk first.
var seedQuestions = []Question{
	{
		ID:       "governance-1",
		Category: CategoryGovernance,
		Position: 1,
		Prompt:   "Does your development team have established governance protocols for reviewing and approving AI model selections and prompt engineering decisions before production deployment?",
		Options: [OptionsPerQuestion]Option{
			{Label: "Yes, we have formal review boards and documented approval processes", Risk: 0},
			{Label: "Yes, but it's mostly informal peer review", Risk: 1},
			{Label: "No, developers make these decisions independently", Risk: 2},
		},
	},
	{
		ID:       "governance-2",
		Category: CategoryGovernance,
		Position: 2,
		Prompt:   "How does your organization handle conflict of interest when selecting foundation models or AI services from vendors?",
		Options: [OptionsPerQuestion]Option{
			{Label: "We have clear policies and disclosure requirements for vendor relationships", Risk: 0},
			{Label: "We're aware of potential conflicts but don't have formal policies", Risk: 1},
			{Label: "We haven't considered this as a potential issue", Risk: 2},
		},
	},
	{
		ID:       "technical-1",
		Category: CategoryTechnical,
		Position: 1,
		Prompt:   "What security measures do you implement when integrating foundation models and APIs into your SDLC pipeline?",
		Options: [OptionsPerQuestion]Option{
			{Label: "API key rotation, encrypted communications, access logging, and secure prompt storage", Risk: 0},
			{Label: "Basic API security but limited logging and monitoring", Risk: 1},
			{Label: "Minimal security - mainly relying on vendor security", Risk: 2},
		},
	},
	{
		ID:       "technical-2",
		Category: CategoryTechnical,
		Position: 2,
		Prompt:   "How do you ensure model alignment and prevent prompt injection attacks in your automated development workflows?",
		Options: [OptionsPerQuestion]Option{
			{Label: "Input validation, prompt sanitization, and output filtering with regular security testing", Risk: 0},
			{Label: "Some input validation but limited prompt security measures", Risk: 1},
			{Label: "We trust the foundation model's built-in safety measures", Risk: 2},
		},
	},
	{
		ID:       "operational-1",
		Category: CategoryOperational,
		Position: 1,
		Prompt:   "What testing and validation processes do you have for AI-generated code and automated development outputs?",
		Options: [OptionsPerQuestion]Option{
			{Label: "Multi-stage testing including unit tests, security scans, and human code review", Risk: 0},
			{Label: "Standard testing but limited AI-specific validation", Risk: 1},
			{Label: "Minimal testing - we mostly trust the AI outputs", Risk: 2},
		},
	},
	{
		ID:       "operational-2",
		Category: CategoryOperational,
		Position: 2,
		Prompt:   "How do you monitor and respond to incidents involving AI model failures, data leakage or unexpected behaviors in your development pipeline?",
		Options: [OptionsPerQuestion]Option{
			{Label: "Formal incident response plan with AI-specific procedures and rollback capabilities", Risk: 0},
			{Label: "Informal incident handling with some monitoring in place", Risk: 1},
			{Label: "We handle issues reactively as they arise", Risk: 2},
		},
	},
	{
		ID:       "privacy-1",
		Category: CategoryPrivacy,
		Position: 1,
		Prompt:   "What measures do you have in place to prevent intellectual property infringement when creating or using AI models for content generation and code development assistance?",
		Options: [OptionsPerQuestion]Option{
			{Label: "Comprehensive IP scanning, license compliance checks, and legal review of AI-generated code", Risk: 0},
			{Label: "Basic awareness of IP issues but limited systematic checking", Risk: 1},
			{Label: "No specific IP protection measures for AI-generated content", Risk: 2},
		},
	},
	{
		ID:       "privacy-2",
		Category: CategoryPrivacy,
		Position: 2,
		Prompt:   "How do you handle personally identifiable information (PII) and sensitive data when using AI tools in your development and testing processes?",
		Options: [OptionsPerQuestion]Option{
			{Label: "Data anonymization, PII detection tools, and strict data handling policies with AI providers", Risk: 0},
			{Label: "Some PII protection measures but inconsistent application", Risk: 1},
			{Label: "No specific PII protection protocols for AI tool usage", Risk: 2},
		},
	},
}

func init() {
	c = buildCatalog(seedCategories, seedQuestions)
}
