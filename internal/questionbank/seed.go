package questionbank

// seedQuestions defines the built-in marketing-operations maturity
// questionnaire. 12 questions, 4 options each, ordered healthiest first.
// Text is display data and is not interpreted.
var seedQuestions = []Question{
	// Strategy
	{
		ID:   "objetivos",
		Text: "Como sua empresa define os objetivos de marketing?",
		Options: []Option{
			{ID: "okr", Text: "Metas trimestrais mensuráveis, ligadas à receita", Weight: 1},
			{ID: "anual", Text: "Metas anuais revisadas ocasionalmente", Weight: 0.6, GapTypes: []GapType{GapStrategy}},
			{ID: "informal", Text: "Metas informais, sem acompanhamento", Weight: 0.3, GapTypes: []GapType{GapStrategy, GapProcess}},
			{ID: "nenhum", Text: "Não há objetivos definidos", Weight: 0, GapTypes: []GapType{GapStrategy, GapProcess}},
		},
	},
	{
		ID:   "persona",
		Text: "Vocês têm personas ou perfil de cliente ideal documentados?",
		Options: []Option{
			{ID: "validadas", Text: "Sim, validadas com dados e revisadas", Weight: 1},
			{ID: "documentadas", Text: "Sim, documentadas mas nunca revisadas", Weight: 0.6, GapTypes: []GapType{GapStrategy}},
			{ID: "intuicao", Text: "Apenas na cabeça do time", Weight: 0.3, GapTypes: []GapType{GapStrategy, GapContent}},
			{ID: "nao", Text: "Não", Weight: 0, GapTypes: []GapType{GapStrategy, GapContent}},
		},
	},

	// Process
	{
		ID:   "funil",
		Text: "O funil de vendas está mapeado em etapas com critérios de passagem?",
		Options: []Option{
			{ID: "completo", Text: "Sim, com critérios e SLAs entre marketing e vendas", Weight: 1},
			{ID: "etapas", Text: "Etapas definidas, sem critérios claros", Weight: 0.5, GapTypes: []GapType{GapProcess}},
			{ID: "parcial", Text: "Só parte do funil é acompanhada", Weight: 0.25, GapTypes: []GapType{GapProcess, GapConversion}},
			{ID: "nao", Text: "Não existe funil mapeado", Weight: 0, GapTypes: []GapType{GapProcess, GapConversion}},
		},
	},
	{
		ID:   "rotina",
		Text: "Com que frequência o time revisa resultados e ajusta campanhas?",
		Options: []Option{
			{ID: "semanal", Text: "Semanalmente, com rituais fixos", Weight: 1},
			{ID: "mensal", Text: "Mensalmente", Weight: 0.7, GapTypes: []GapType{GapProcess}},
			{ID: "esporadico", Text: "Quando surge um problema", Weight: 0.3, GapTypes: []GapType{GapProcess, GapTeam}},
			{ID: "nunca", Text: "Não revisamos", Weight: 0, GapTypes: []GapType{GapProcess, GapTeam}},
		},
	},

	// Automation
	{
		ID:   "automacao",
		Text: "Quais tarefas de marketing estão automatizadas?",
		Options: []Option{
			{ID: "nutricao", Text: "Nutrição de leads, lead scoring e handoff para vendas", Weight: 1},
			{ID: "emails", Text: "Apenas disparos de e-mail", Weight: 0.5, GapTypes: []GapType{GapAutomation}},
			{ID: "planilhas", Text: "Usamos planilhas e processos manuais", Weight: 0.2, GapTypes: []GapType{GapAutomation, GapProcess}},
			{ID: "nenhuma", Text: "Nenhuma", Weight: 0, GapTypes: []GapType{GapAutomation}},
		},
	},
	{
		ID:   "integracao",
		Text: "CRM e ferramentas de marketing estão integrados?",
		Options: []Option{
			{ID: "total", Text: "Sim, sincronização automática nos dois sentidos", Weight: 1},
			{ID: "parcial", Text: "Parcialmente, com exportações periódicas", Weight: 0.5, GapTypes: []GapType{GapAutomation, GapData}},
			{ID: "manual", Text: "Dados copiados manualmente", Weight: 0.2, GapTypes: []GapType{GapAutomation, GapData}},
			{ID: "sem-crm", Text: "Não usamos CRM", Weight: 0, GapTypes: []GapType{GapAutomation, GapData, GapProcess}},
		},
	},

	// Data
	{
		ID:   "metricas",
		Text: "Quais métricas vocês acompanham regularmente?",
		Options: []Option{
			{ID: "cac-ltv", Text: "CAC, LTV, ROI por canal e taxa de conversão por etapa", Weight: 1},
			{ID: "canal", Text: "Leads e custo por canal", Weight: 0.6, GapTypes: []GapType{GapData}},
			{ID: "vaidade", Text: "Seguidores, curtidas e visitas", Weight: 0.25, GapTypes: []GapType{GapData, GapStrategy}},
			{ID: "nenhuma", Text: "Não acompanhamos métricas", Weight: 0, GapTypes: []GapType{GapData, GapStrategy}},
		},
	},
	{
		ID:   "atribuicao",
		Text: "Vocês sabem qual canal originou cada venda?",
		Options: []Option{
			{ID: "multitoque", Text: "Sim, com atribuição multitoque", Weight: 1},
			{ID: "ultimo-clique", Text: "Sim, pelo último clique", Weight: 0.7, GapTypes: []GapType{GapData}},
			{ID: "as-vezes", Text: "Às vezes, perguntando ao cliente", Weight: 0.3, GapTypes: []GapType{GapData, GapAcquisition}},
			{ID: "nao", Text: "Não", Weight: 0, GapTypes: []GapType{GapData, GapAcquisition}},
		},
	},

	// Content
	{
		ID:   "conteudo",
		Text: "Como é planejada a produção de conteúdo?",
		Options: []Option{
			{ID: "calendario", Text: "Calendário editorial por etapa do funil e persona", Weight: 1},
			{ID: "calendario-simples", Text: "Calendário, sem relação com o funil", Weight: 0.6, GapTypes: []GapType{GapContent}},
			{ID: "demanda", Text: "Sob demanda", Weight: 0.3, GapTypes: []GapType{GapContent, GapProcess}},
			{ID: "nao-produz", Text: "Não produzimos conteúdo", Weight: 0, GapTypes: []GapType{GapContent}},
		},
	},

	// Acquisition
	{
		ID:   "canais",
		Text: "Quantos canais de aquisição trazem clientes de forma previsível?",
		Options: []Option{
			{ID: "varios", Text: "Três ou mais, com orçamento otimizado", Weight: 1},
			{ID: "dois", Text: "Dois canais", Weight: 0.6, GapTypes: []GapType{GapAcquisition}},
			{ID: "um", Text: "Dependemos de um único canal", Weight: 0.3, GapTypes: []GapType{GapAcquisition, GapStrategy}},
			{ID: "indicacao", Text: "Só indicações espontâneas", Weight: 0, GapTypes: []GapType{GapAcquisition, GapStrategy}},
		},
	},

	// Conversion
	{
		ID:   "conversao",
		Text: "As páginas de conversão são testadas e otimizadas?",
		Options: []Option{
			{ID: "testes-ab", Text: "Sim, com testes A/B contínuos", Weight: 1},
			{ID: "ajustes", Text: "Ajustes pontuais com base em opinião", Weight: 0.5, GapTypes: []GapType{GapConversion}},
			{ID: "nunca", Text: "Nunca foram alteradas", Weight: 0.2, GapTypes: []GapType{GapConversion}},
			{ID: "sem-pagina", Text: "Não temos páginas de conversão", Weight: 0, GapTypes: []GapType{GapConversion, GapAcquisition}},
		},
	},

	// Team
	{
		ID:   "equipe",
		Text: "Como está estruturado o time de marketing?",
		Options: []Option{
			{ID: "dedicado", Text: "Time dedicado com papéis definidos", Weight: 1},
			{ID: "pequeno", Text: "Uma ou duas pessoas acumulando funções", Weight: 0.5, GapTypes: []GapType{GapTeam}},
			{ID: "terceirizado", Text: "Totalmente terceirizado, sem gestão interna", Weight: 0.3, GapTypes: []GapType{GapTeam, GapStrategy}},
			{ID: "fundador", Text: "O fundador faz tudo", Weight: 0, GapTypes: []GapType{GapTeam, GapProcess}},
		},
	},
}
