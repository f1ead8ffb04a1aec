package models

// DepartamentoDesempenho is one row of the department performance ranking.
type DepartamentoDesempenho struct {
	DepartamentoID   int64   `json:"departamentoId"`
	DepartamentoNome string  `json:"departamentoNome"`
	MediaNotas       float64 `json:"mediaNotas"`
	MenorNota        float64 `json:"menorNota"`
	MaiorNota        float64 `json:"maiorNota"`
	AlunosAvaliados  int     `json:"alunosAvaliados"`
	NotasLancadas    int     `json:"notasLancadas"`
}

// AlunoModalidadeEquilibrada is a student graded in both exam-type and
// project-type assessments.
type AlunoModalidadeEquilibrada struct {
	AlunoID           int64  `json:"alunoId"`
	RA                string `json:"ra"`
	Nome              string `json:"nome"`
	DepartamentoNome  string `json:"departamentoNome"`
	AvaliacoesProva   int    `json:"avaliacoesProva"`
	ProjetosEntregues int    `json:"projetosEntregues"`
}

// AlunoCoberturaNotas summarizes how many assessments a student has been
// graded on.
type AlunoCoberturaNotas struct {
	AlunoID          int64   `json:"alunoId"`
	RA               string  `json:"ra"`
	Nome             string  `json:"nome"`
	DepartamentoNome string  `json:"departamentoNome"`
	ProvasAvaliadas  int     `json:"provasAvaliadas"`
	MediaNotas       float64 `json:"mediaNotas"`
	SemNotas         bool    `json:"semNotas"`
}

// ConsultasAvancadasResumo combines the three aggregate reports.
type ConsultasAvancadasResumo struct {
	RankingDepartamentos []DepartamentoDesempenho     `json:"rankingDepartamentos"`
	AlunosModalidades    []AlunoModalidadeEquilibrada `json:"alunosModalidades"`
	CoberturaNotas       []AlunoCoberturaNotas        `json:"coberturaNotas"`
}
