package classify

import "github.com/SoumyadeepDas-2004/JobiFy/internal/types"

// Tables holds the immutable keyword lookups driving classification.
// Build one with DefaultTables at startup and pass it to New; the classifier
// never mutates it.
type Tables struct {
	// TechKeywords decide tech relevance when found in title+description.
	TechKeywords []string
	// NonTechKeywords reject a posting outright when found in the title.
	NonTechKeywords []string
	// TechCategories are feed category labels that count as tech on their own.
	TechCategories []string
	// DomainKeywords score each domain against title+description.
	DomainKeywords map[types.Domain][]string
	// Skills is the full vocabulary used for skill extraction, spanning all
	// domains plus tools that belong to no single one.
	Skills []string
}

// DefaultTables returns the built-in keyword tables.
func DefaultTables() Tables {
	return Tables{
		TechKeywords: []string{
			"engineer", "developer", "programmer", "software", "data",
			"devops", "sre", "cloud", "backend", "frontend", "full stack",
			"machine learning", "ai", "product manager", "qa", "security",
		},
		NonTechKeywords: []string{
			"sales", "marketing", "customer support", "hr", "writer",
			"executive assistant", "finance", "legal", "account executive",
		},
		TechCategories: []string{
			"programming", "devops", "design",
		},
		DomainKeywords: map[types.Domain][]string{
			types.DomainFrontend: {
				"react", "vue", "angular", "javascript", "typescript",
				"css", "html", "next.js", "frontend", "front-end", "ui",
			},
			types.DomainBackend: {
				"golang", "java", "ruby", "php", "node", "django", "flask",
				"fastapi", "spring", "rails", "graphql", "grpc", "api",
				"backend", "back-end", "microservices",
			},
			types.DomainFullStack: {
				"full stack", "fullstack", "full-stack", "mern", "mean",
			},
			types.DomainDevOpsCloud: {
				"aws", "azure", "gcp", "docker", "kubernetes", "terraform",
				"jenkins", "circleci", "linux", "devops", "sre", "ci/cd",
			},
			types.DomainDataScienceML: {
				"python", "pytorch", "tensorflow", "pandas", "numpy",
				"machine learning", "data science", "deep learning", "nlp",
				"llm", "etl", "snowflake",
			},
			types.DomainMobile: {
				"ios", "android", "swift", "kotlin", "flutter",
				"react native", "mobile",
			},
		},
		Skills: []string{
			// Languages
			"python", "java", "javascript", "typescript", "golang", "rust",
			"c++", "ruby", "php", "swift", "kotlin", "sql",
			// Frameworks
			"react", "node", "django", "flask", "fastapi", "spring", "vue",
			"angular", "next.js", "rails", "pytorch", "tensorflow", "graphql",
			"grpc", "react native", "flutter",
			// Cloud / DevOps
			"aws", "azure", "gcp", "docker", "kubernetes", "terraform",
			"jenkins", "linux", "circleci", "git",
			// Databases
			"postgresql", "mysql", "mongodb", "redis", "elasticsearch",
			"dynamodb", "snowflake",
		},
	}
}
