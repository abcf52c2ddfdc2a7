package parser

// DefaultSkills is the recognized skill vocabulary. Extraction only ever
// returns members of this closed set (in this casing), so downstream scoring
// and matching can treat membership as meaningful.
var DefaultSkills = []string{
	"Python", "Java", "C++", "JavaScript", "React", "Node.js", "SQL", "NoSQL",
	"MongoDB", "AWS", "Azure", "Docker", "Kubernetes", "Machine Learning",
	"Deep Learning", "Data Science", "Pandas", "NumPy", "Scikit-learn",
	"TensorFlow", "PyTorch", "Git", "CI/CD", "Agile", "Scrum", "Communication",
	"Leadership", "Problem Solving",
}

// DefaultTitles is the job-title vocabulary, checked in this exact order.
// Earlier entries win over later ones regardless of where they appear in the
// document, which keeps title extraction reproducible.
var DefaultTitles = []string{
	"Software Engineer", "Data Scientist", "Product Manager", "Project Manager",
	"Business Analyst", "DevOps Engineer", "Full Stack Developer", "Frontend Developer",
	"Backend Developer", "Machine Learning Engineer", "Data Engineer", "System Administrator",
	"Network Engineer", "QA Engineer", "UI/UX Designer", "Graphic Designer",
	"Marketing Manager", "Sales Manager", "Accountant", "HR Manager", "Consultant",
	"Director", "VP", "Chief", "Lead", "Senior", "Junior", "Associate", "Intern",
}

// structuralWords are section headers and contact labels that disqualify a
// line from being a candidate name, together with seniority/role words.
var structuralWords = []string{
	"resume", "cv", "curriculum", "vitae", "profile", "summary",
	"experience", "education", "contact", "email", "phone", "address",
	"skills", "projects", "references", "languages", "certifications",
	"senior", "junior", "associate", "lead", "manager", "director", "vp",
	"engineer", "developer", "architect", "consultant", "analyst", "intern",
}
