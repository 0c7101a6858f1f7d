package diagnosis

import "github.com/abhisek/gapcheck/internal/questionbank"

// genericGapInfo is used for gap types the taxonomy does not describe.
var genericGapInfo = GapInfo{
	Description: "Área com oportunidades de melhoria identificadas no diagnóstico",
	Recommendations: []string{
		"Agende uma conversa com um especialista para aprofundar esta área",
	},
}

// seedGapInfo describes the gap types used by the built-in question bank.
var seedGapInfo = []GapInfo{
	{
		Type:        questionbank.GapStrategy,
		Label:       "Estratégia",
		Description: "Objetivos, público e posicionamento pouco definidos ou desconectados da receita",
		Recommendations: []string{
			"Defina metas trimestrais mensuráveis ligadas à receita",
			"Documente e valide o perfil de cliente ideal com dados reais",
			"Revise o posicionamento frente aos principais concorrentes",
		},
	},
	{
		Type:        questionbank.GapProcess,
		Label:       "Processo",
		Description: "Etapas do funil e rotinas de acompanhamento sem padrão definido",
		Recommendations: []string{
			"Mapeie o funil com critérios de passagem entre etapas",
			"Estabeleça SLAs entre marketing e vendas",
			"Crie uma rotina semanal de revisão de resultados",
		},
	},
	{
		Type:        questionbank.GapAutomation,
		Label:       "Automação",
		Description: "Tarefas repetitivas executadas manualmente e ferramentas desconectadas",
		Recommendations: []string{
			"Automatize a nutrição de leads por etapa do funil",
			"Integre CRM e ferramenta de automação",
			"Implemente lead scoring para priorizar contatos",
		},
	},
	{
		Type:        questionbank.GapData,
		Label:       "Dados",
		Description: "Métricas insuficientes para orientar decisões e atribuir resultados",
		Recommendations: []string{
			"Acompanhe CAC, LTV e conversão por etapa",
			"Configure atribuição de origem para cada venda",
			"Centralize os indicadores em um painel único",
		},
	},
	{
		Type:        questionbank.GapContent,
		Label:       "Conteúdo",
		Description: "Produção de conteúdo sem planejamento por persona ou etapa do funil",
		Recommendations: []string{
			"Monte um calendário editorial por persona e etapa",
			"Reaproveite conteúdos de melhor desempenho em outros formatos",
		},
	},
	{
		Type:        questionbank.GapAcquisition,
		Label:       "Aquisição",
		Description: "Dependência de poucos canais ou de canais sem previsibilidade",
		Recommendations: []string{
			"Teste ao menos um novo canal por trimestre com orçamento controlado",
			"Meça o custo de aquisição por canal antes de escalar",
		},
	},
	{
		Type:        questionbank.GapConversion,
		Label:       "Conversão",
		Description: "Páginas e ofertas sem otimização contínua",
		Recommendations: []string{
			"Rode testes A/B nas páginas de maior tráfego",
			"Revise ofertas e chamadas para ação de cada etapa",
		},
	},
	{
		Type:        questionbank.GapTeam,
		Label:       "Equipe",
		Description: "Time sobrecarregado ou sem papéis e gestão definidos",
		Recommendations: []string{
			"Defina responsáveis por canal e por etapa do funil",
			"Avalie apoio externo para funções acumuladas",
		},
	},
}
