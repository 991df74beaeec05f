package match

// Built-in domain registry. Keyword thresholds differ per domain: broad
// domains need more corroborating hits before they count as detected.
// Transferability is directed; frontend to backend does not imply the
// reverse unless listed.
var defaultDomains = []Domain{
	{
		ID:       "backend-engineering",
		Name:     "Backend Engineering",
		Category: "engineering",
		JobKeywords: []string{
			"backend", "back-end", "server-side", "api", "rest", "grpc",
			"microservices", "node.js", "go", "golang", "java", "python",
			"postgresql", "mysql", "database design", "distributed systems",
		},
		CVKeywords: []string{
			"backend", "api", "rest", "microservices", "node.js", "go",
			"java", "python", "postgresql", "sql", "server",
		},
		RequiredCount:  2,
		TransferableTo: []string{"platform-engineering", "data-engineering", "fullstack-engineering"},
	},
	{
		ID:       "frontend-engineering",
		Name:     "Frontend Engineering",
		Category: "engineering",
		JobKeywords: []string{
			"frontend", "front-end", "react", "vue", "angular", "svelte",
			"typescript", "javascript", "css", "html", "ui", "web application",
			"next.js", "accessibility",
		},
		CVKeywords: []string{
			"frontend", "react", "vue", "angular", "typescript", "javascript",
			"css", "html", "ui",
		},
		RequiredCount:  2,
		TransferableTo: []string{"backend-engineering", "fullstack-engineering", "mobile-engineering"},
	},
	{
		ID:       "fullstack-engineering",
		Name:     "Full-Stack Engineering",
		Category: "engineering",
		JobKeywords: []string{
			"full stack", "fullstack", "full-stack", "react", "node.js",
			"typescript", "api", "end-to-end", "frontend", "backend",
		},
		CVKeywords: []string{
			"full stack", "fullstack", "react", "node.js", "typescript", "api",
		},
		RequiredCount:  2,
		TransferableTo: []string{"backend-engineering", "frontend-engineering"},
	},
	{
		ID:       "platform-engineering",
		Name:     "Platform / DevOps Engineering",
		Category: "engineering",
		JobKeywords: []string{
			"devops", "platform engineering", "kubernetes", "docker",
			"terraform", "ci/cd", "infrastructure", "aws", "gcp", "azure",
			"observability", "sre", "site reliability",
		},
		CVKeywords: []string{
			"devops", "kubernetes", "docker", "terraform", "ci/cd", "aws",
			"infrastructure", "sre",
		},
		RequiredCount:  2,
		TransferableTo: []string{"backend-engineering", "security-engineering"},
	},
	{
		ID:       "data-engineering",
		Name:     "Data Engineering",
		Category: "data",
		JobKeywords: []string{
			"data engineering", "data pipeline", "etl", "elt", "spark",
			"airflow", "kafka", "warehouse", "snowflake", "dbt", "big data",
			"data modeling",
		},
		CVKeywords: []string{
			"data pipeline", "etl", "spark", "airflow", "kafka", "sql",
			"warehouse",
		},
		RequiredCount:  2,
		TransferableTo: []string{"backend-engineering", "machine-learning"},
	},
	{
		ID:       "machine-learning",
		Name:     "Machine Learning",
		Category: "data",
		JobKeywords: []string{
			"machine learning", "deep learning", "pytorch", "tensorflow",
			"nlp", "computer vision", "llm", "model training", "mlops",
			"recommendation",
		},
		CVKeywords: []string{
			"machine learning", "pytorch", "tensorflow", "nlp", "model",
			"deep learning",
		},
		RequiredCount:  2,
		TransferableTo: []string{"data-engineering"},
	},
	{
		ID:       "mobile-engineering",
		Name:     "Mobile Engineering",
		Category: "engineering",
		JobKeywords: []string{
			"mobile", "ios", "android", "swift", "kotlin", "react native",
			"flutter", "app store",
		},
		CVKeywords: []string{
			"mobile", "ios", "android", "swift", "kotlin", "react native",
			"flutter",
		},
		RequiredCount:  2,
		TransferableTo: []string{"frontend-engineering"},
	},
	{
		ID:       "security-engineering",
		Name:     "Security Engineering",
		Category: "engineering",
		JobKeywords: []string{
			"security", "appsec", "penetration testing", "vulnerability",
			"threat modeling", "soc", "incident response", "compliance",
			"cryptography",
		},
		CVKeywords: []string{
			"security", "appsec", "vulnerability", "incident response",
			"penetration testing",
		},
		RequiredCount:  2,
		TransferableTo: []string{"platform-engineering"},
	},
	{
		ID:       "qa-engineering",
		Name:     "QA / Test Engineering",
		Category: "engineering",
		JobKeywords: []string{
			"qa", "quality assurance", "test automation", "selenium",
			"cypress", "playwright", "regression testing", "test plan",
		},
		CVKeywords: []string{
			"qa", "test automation", "selenium", "cypress", "testing",
		},
		RequiredCount:  2,
		TransferableTo: []string{"backend-engineering", "frontend-engineering"},
	},
	{
		ID:       "product-management",
		Name:     "Product Management",
		Category: "product",
		JobKeywords: []string{
			"product manager", "product management", "roadmap",
			"stakeholder", "user research", "prioritization", "product owner",
			"go-to-market",
		},
		CVKeywords: []string{
			"product manager", "roadmap", "stakeholder", "user research",
			"product owner",
		},
		RequiredCount:  2,
		TransferableTo: []string{},
	},
}

// Built-in skill dictionary keyed by canonical name. The first
// matching synonym marks the skill as found.
var defaultSkills = []Skill{
	{Name: "Go", Category: "language", Synonyms: []string{"golang", "go"}},
	{Name: "Python", Category: "language", Synonyms: []string{"python"}},
	{Name: "Java", Category: "language", Synonyms: []string{"java"}},
	{Name: "TypeScript", Category: "language", Synonyms: []string{"typescript", "ts"}},
	{Name: "JavaScript", Category: "language", Synonyms: []string{"javascript", "js", "ecmascript"}},
	{Name: "Rust", Category: "language", Synonyms: []string{"rust"}},
	{Name: "C++", Category: "language", Synonyms: []string{"c++", "cpp"}},
	{Name: "C#", Category: "language", Synonyms: []string{"c#", ".net", "dotnet"}},
	{Name: "Ruby", Category: "language", Synonyms: []string{"ruby", "rails"}},
	{Name: "Kotlin", Category: "language", Synonyms: []string{"kotlin"}},
	{Name: "Swift", Category: "language", Synonyms: []string{"swift"}},
	{Name: "SQL", Category: "language", Synonyms: []string{"sql"}},

	{Name: "React", Category: "framework", Synonyms: []string{"react", "react.js", "reactjs"}},
	{Name: "Vue", Category: "framework", Synonyms: []string{"vue", "vue.js", "vuejs"}},
	{Name: "Angular", Category: "framework", Synonyms: []string{"angular"}},
	{Name: "Next.js", Category: "framework", Synonyms: []string{"next.js", "nextjs"}},
	{Name: "Node.js", Category: "framework", Synonyms: []string{"node.js", "nodejs", "node"}},
	{Name: "Django", Category: "framework", Synonyms: []string{"django"}},
	{Name: "Spring", Category: "framework", Synonyms: []string{"spring", "spring boot"}},
	{Name: "GraphQL", Category: "framework", Synonyms: []string{"graphql"}},
	{Name: "gRPC", Category: "framework", Synonyms: []string{"grpc"}},

	{Name: "PostgreSQL", Category: "database", Synonyms: []string{"postgresql", "postgres"}},
	{Name: "MySQL", Category: "database", Synonyms: []string{"mysql", "mariadb"}},
	{Name: "MongoDB", Category: "database", Synonyms: []string{"mongodb", "mongo"}},
	{Name: "Redis", Category: "database", Synonyms: []string{"redis"}},
	{Name: "Elasticsearch", Category: "database", Synonyms: []string{"elasticsearch", "opensearch"}},
	{Name: "Kafka", Category: "database", Synonyms: []string{"kafka"}},
	{Name: "SQLite", Category: "database", Synonyms: []string{"sqlite"}},

	{Name: "AWS", Category: "cloud", Synonyms: []string{"aws", "amazon web services"}},
	{Name: "GCP", Category: "cloud", Synonyms: []string{"gcp", "google cloud"}},
	{Name: "Azure", Category: "cloud", Synonyms: []string{"azure"}},
	{Name: "Kubernetes", Category: "cloud", Synonyms: []string{"kubernetes", "k8s"}},
	{Name: "Docker", Category: "cloud", Synonyms: []string{"docker", "containers"}},
	{Name: "Terraform", Category: "cloud", Synonyms: []string{"terraform"}},

	{Name: "CI/CD", Category: "practice", Synonyms: []string{"ci/cd", "continuous integration", "continuous delivery"}},
	{Name: "Testing", Category: "practice", Synonyms: []string{"unit testing", "integration testing", "tdd", "test-driven"}},
	{Name: "Agile", Category: "practice", Synonyms: []string{"agile", "scrum", "kanban"}},
	{Name: "Observability", Category: "practice", Synonyms: []string{"observability", "prometheus", "grafana", "monitoring"}},
	{Name: "Machine Learning", Category: "practice", Synonyms: []string{"machine learning", "deep learning", "pytorch", "tensorflow"}},
	{Name: "Distributed Systems", Category: "practice", Synonyms: []string{"distributed systems", "distributed computing"}},
}
