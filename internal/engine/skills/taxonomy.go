// Package skills implements closed-vocabulary skill extraction: a fixed
// taxonomy of canonical skill phrases, an alias table for informal forms,
// and a whole-word multi-token matcher over normalized free text.
package skills

// Taxonomy is the master set of canonical skill phrases. All phrases are
// lower-case with space-separated tokens; dotted forms (node.js) keep their
// dots. Extraction never returns a skill outside this set.
var Taxonomy = []string{
	// Software / IT
	"python", "java", "javascript", "typescript",
	"c", "c++", "c#", "go",
	"ruby", "php", "swift", "kotlin", "scala", "r",

	"html", "css", "sass", "bootstrap", "tailwind css",
	"react", "angular", "vue.js", "next.js", "node.js",
	"express.js", "django", "flask", "spring boot",

	"rest api", "graphql", "microservices",
	"git", "github", "gitlab", "bitbucket",

	// Cloud / DevOps
	"aws", "azure", "gcp",
	"docker", "kubernetes", "terraform",
	"jenkins", "ci cd", "ansible",
	"linux", "bash", "shell scripting",

	// Data / AI
	"data analysis", "data science", "machine learning",
	"deep learning", "artificial intelligence",
	"nlp", "computer vision",

	"pandas", "numpy", "scikit learn",
	"tensorflow", "pytorch", "keras",
	"power bi", "tableau", "excel",

	"spark", "hadoop", "airflow", "kafka",

	// Databases
	"sql", "mysql", "postgresql", "oracle",
	"mongodb", "cassandra", "redis", "dynamodb",

	// Cybersecurity
	"cyber security", "information security",
	"network security", "penetration testing",
	"ethical hacking", "risk assessment",

	// Business / management
	"business analysis", "requirements gathering",
	"stakeholder management", "process improvement",
	"project management", "program management",
	"product management",

	"agile", "scrum", "kanban", "waterfall",

	// Finance / accounting
	"financial analysis", "accounting",
	"budgeting", "forecasting",
	"risk management", "taxation",
	"auditing",

	// Marketing / sales
	"digital marketing", "seo", "sem",
	"content marketing", "email marketing",
	"social media marketing",
	"sales", "business development",
	"lead generation", "crm",

	// HR / operations
	"recruitment", "talent acquisition",
	"payroll", "hr operations",
	"employee engagement",
	"performance management",

	"operations management",
	"supply chain management",
	"logistics",

	// Healthcare
	"clinical research", "patient care",
	"medical coding", "healthcare administration",

	// Education
	"teaching", "curriculum development",
	"instructional design",
	"training and development",

	// Design
	"ui design", "ux design",
	"figma", "adobe photoshop",
	"adobe illustrator",

	// Soft skills (controlled)
	"communication", "leadership",
	"problem solving", "critical thinking",
	"time management", "team collaboration",
}

// Alias maps one informal form to its canonical taxonomy phrase.
type Alias struct {
	From string
	To   string
}

// Aliases are applied in declaration order, each in a single left-to-right
// pass, before taxonomy matching. The order is part of the contract: "js"
// must run before "node" so that "node.js" survives rewriting. Alias targets
// must be valid Taxonomy entries — a dangling target silently produces no
// match. Alias-of-alias chains are not resolved.
var Aliases = []Alias{
	{"ml", "machine learning"},
	{"ai", "artificial intelligence"},
	{"js", "javascript"},
	{"reactjs", "react"},
	{"node", "node.js"},
	{"tf", "tensorflow"},
	{"ci/cd", "ci cd"},
	{"spring-boot", "spring boot"},
	{"scikit-learn", "scikit learn"},
	{"fp&a", "financial analysis"},
	{"seo/sem", "seo"},
	{"pm", "project management"},
	{"ba", "business analysis"},
}
