package market

// projectTypePT translates registry project-type labels for the
// Portuguese-facing views. The original label is kept alongside the
// translation in the merged table.
var projectTypePT = map[string]string{
	"Afforestation + Reforestation": "Florestamento e Reflorestamento",
	"Avoided Grassland Conversion":  "Conversão de Pastagem Evitada",
	"Biomass":                       "Biomassa",
	"Centralized Solar":             "Energia Solar Centralizada",
	"Clean Water":                   "Água Limpa",
	"Compost":                       "Compostagem",
	"Cookstove":                     "Fogões Eficientes",
	"Distributed Solar":             "Energia Solar Distribuída",
	"Energy Efficiency":             "Eficiência Energética",
	"Landfill":                      "Aterro Sanitário",
	"Waste Diversion":               "Desvio de Resíduos",
	"Renewable Energy":              "Energia Renovável",
	"Advanced Refrigerant":          "Refrigerante Avançado",
	"Manure Bodigester":             "Biodigestor de Esterco",
	"Road Construction":             "Construção de Estradas",
	"Gas Leak Repair":               "Reparo de Vazamento de Gás",
	"Wind":                          "Energia Eólica",
}

// TranslateProjectType returns the translated project-type label, falling back
// to the input for unmapped types.
func TranslateProjectType(projectType string) string {
	if pt, ok := projectTypePT[projectType]; ok {
		return pt
	}
	return projectType
}
