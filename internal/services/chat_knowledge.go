package services

// foodQATopic is one entry in the built-in food-safety knowledge base.
type foodQATopic struct {
	questions []string
	answer    string
}

var foodQATopics = []foodQATopic{
	{
		questions: []string{
			"Which biscuit ingredient is identified as the primary source of heavy metal contamination?",
			"Does flour used in biscuits cause contamination?",
			"How does wheat flour introduce heavy metals into biscuits?",
		},
		answer: "Flour is the main source of contamination in biscuits due to pesticide residues, fertilizers, and irrigation with polluted water during wheat cultivation.",
	},
	{
		questions: []string{
			"What specific contaminants can enter biscuits during production?",
			"How do processing stages affect contamination in biscuits?",
			"What are potential contamination sources in biscuit factories?",
		},
		answer: "Contaminants like cadmium (Cd), lead (Pb), chromium (Cr), copper (Cu), manganese (Mn), iron (Fe), and zinc (Zn) can enter from raw materials, processing equipment, and packaging stages.",
	},
	{
		questions: []string{
			"How can sugar contribute to biscuit health risks beyond its calorie content?",
			"What happens when artificial sweeteners replace sugar in biscuits?",
			"Why is sugar a concern in biscuits apart from sweetness?",
		},
		answer: "Sugar contributes to texture and flavor, but due to its high energy value, manufacturers may use artificial sweeteners like saccharin or aspartame, which can carry additional health concerns when overused.",
	},
	{
		questions: []string{
			"Which emulsifier is commonly used in biscuits, and why?",
			"What role does lecithin play in biscuit production?",
			"Are emulsifiers safe in biscuits?",
		},
		answer: "Lecithin is a widely used emulsifier that helps fat distribution and improves dough texture, and it's considered safer and more nutritious than some alternatives.",
	},
	{
		questions: []string{
			"Why is cadmium considered highly dangerous even at low levels in biscuits?",
			"What are the effects of cadmium in food?",
			"How does cadmium in biscuits affect human health?",
		},
		answer: "Cadmium is extremely toxic even in low concentrations, and prolonged exposure can lead to kidney damage, bone disorders like osteoporosis, and increased cancer risk.",
	},
	{
		questions: []string{
			"What makes lead contamination in biscuits particularly harmful for children?",
			"Why is lead dangerous in food products like biscuits?",
			"How does lead exposure affect the human body?",
		},
		answer: "Lead is highly toxic, especially for children due to their fast metabolism. It can cause neurological damage, cognitive delays, and developmental disorders even in small amounts.",
	},
	{
		questions: []string{
			"What are the FAO/WHO maximum permitted levels for lead and cadmium in food?",
			"How much lead or cadmium is allowed in biscuits?",
			"What are the safe thresholds for heavy metals in food?",
		},
		answer: "FAO/WHO limits: Lead (0.3 mg/kg), Cadmium (0.2 mg/kg), Chromium (2.3 mg/kg), Copper (73.3 mg/kg), Iron (426 mg/kg), Zinc (99.4 mg/kg), Manganese (500 mg/kg).",
	},
	{
		questions: []string{
			"How can consumers interpret biscuit labels to assess risk?",
			"What should I look for on biscuit ingredient lists?",
			"Do certifications help in choosing safe biscuits?",
		},
		answer: "Check for food safety certifications, avoid artificial colors and additives, and prefer clear ingredient lists. Organic and certified products are generally safer.",
	},
	{
		questions: []string{
			"Why is monitoring snack foods like biscuits critical from a public health perspective?",
			"Can regular snack consumption increase health risks?",
			"Why should packaged foods be tested for metals?",
		},
		answer: "Because biscuits are widely consumed, even small levels of contaminants can accumulate over time, posing chronic health risks, especially to children.",
	},
}
