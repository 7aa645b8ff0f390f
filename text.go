package main

type NavLink struct {
	Href  string
	Label string
}

type SocialLink struct {
	Label string
	Href  string
}

type Language struct {
	Name  string
	Level string
}

type EducationItem struct {
	Years       string
	Degree      string
	Major       string
	Institution string
	Location    string
}

type ExperienceItem struct {
	Role     string
	Company  string
	Location string
	Date     string
	Desc     string
	Tags     []string
}

type Project struct {
	Title    string
	Subtitle string
	Stack    []string
	Desc     string
	GitHub   string
}

// HasLink is false for projects whose repository is not public yet.
func (p Project) HasLink() bool {
	return p.GitHub != "" && p.GitHub != "#"
}

type SkillColumn struct {
	Category string
	Skills   []string
}

type Honor struct {
	Title  string
	Issuer string
}

type Certification struct {
	Title  string
	Issuer string
	Href   string
}

type ContactDetail struct {
	Text string
	Href string
}

// PageContent is everything the index template renders besides the contact form.
type PageContent struct {
	OwnerName      string
	Brand          string
	Nav            []NavLink
	Socials        []SocialLink
	AboutMe        string
	Languages      []Language
	Education      []EducationItem
	Experience     []ExperienceItem
	Projects       []Project
	Skills         []SkillColumn
	Honors         []Honor
	Certifications []Certification
	ContactPitch   string
	ContactDetails []ContactDetail
	Footer         string
}

var Content = PageContent{
	OwnerName: "Rutuja Bhagat",
	Brand:     "ruu.",
	Nav: []NavLink{
		{"#about", "About"},
		{"#experience", "Experience"},
		{"#projects", "Projects"},
		{"#skills", "Skills"},
		{"#contact", "Contact"},
	},
	Socials: []SocialLink{
		{"GitHub", "https://github.com/ruubhagat"},
		{"LinkedIn", "https://linkedin.com/in/ru-bhagat"},
		{"Email", "mailto:rutuja.bhagat.developer@gmail.com"},
		{"Medium", "https://medium.com/@rutujaaa"},
		{"Instagram", "https://www.instagram.com/ruu.bhagat/"},
	},
	AboutMe: `Greetings! I'm Rutuja, a passionate Software Developer with a strong focus on building secure,
	scalable, and cloud-native applications. My expertise lies in backend architecture, full-stack development,
	and cloud infrastructure.`,
	Languages: []Language{
		{"English", "Full Professional"},
		{"Hindi", "Full Professional"},
		{"Marathi", "Native / Bilingual"},
		{"Kannada", "Limited Working"},
	},
	Education: []EducationItem{
		{
			Years:       "2023 — 2026",
			Degree:      "Bachelor of Technology",
			Major:       "Computer Science and Engineering",
			Institution: "PES University",
			Location:    "Bengaluru, Karnataka, India",
		},
		{
			Years:       "2020 — 2023",
			Degree:      "Diploma in Engineering",
			Major:       "Computer Engineering",
			Institution: "Mumbai Educational Trust, Institute of Technology",
			Location:    "Nashik, Maharashtra, India",
		},
		{
			Years:       "2009 — 2020",
			Degree:      "Primary and Secondary Education",
			Major:       "MSBSHSE Board",
			Institution: "St. Xavier's High School",
			Location:    "Shrirampur, Maharashtra, India",
		},
	},
	Experience: []ExperienceItem{
		{
			Role:     "Incoming Intern",
			Company:  "PwC Acceleration Center India",
			Location: "Bengaluru, Karnataka",
			Date:     "Feb 2026 - Aug 2026",
			Desc: `Selected for a highly competitive internship program focusing on enterprise-grade cloud, security,
			and scalable software solutions. Will be contributing to real-world client projects involving cloud
			security architecture and automation workflows.`,
			Tags: []string{"Cybersecurity", "Cloud Solutions", "Generative AI"},
		},
		{
			Role:     "Launchpad Trainee",
			Company:  "PwC Acceleration Center India",
			Location: "Bengaluru, Karnataka",
			Date:     "Feb 2025 - July 2025",
			Desc: `Successfully completed PwC's Launchpad 3.0 program, gaining hands-on exposure to Python, Java,
			Cybersecurity, PowerShell, and Prompt Engineering. Demonstrated strong problem-solving and technical
			proficiency through multiple evaluations and practical labs.`,
			Tags: []string{"Python", "Java", "Cybersecurity", "PowerShell", "Prompt Engineering"},
		},
		{
			Role:     "Summer Intern",
			Company:  "Calibers InfoTech",
			Location: "Nashik, Maharashtra",
			Date:     "July 2022 - Aug 2022",
			Desc: `Developed responsive and reusable UI components using React.js, improving application usability
			and performance. Gained real-world exposure to component-based architecture and modern frontend
			development practices.`,
			Tags: []string{"APIs", "Web Development"},
		},
	},
	Projects: []Project{
		{
			Title:    "QueueCTL",
			Subtitle: "CLI Tool",
			Stack:    []string{"Python", "CLI", "Queue Management"},
			Desc: `Designed a lightweight command-line tool for real-time monitoring and management of message
			queues, optimizing queue operations and improving observability.`,
			GitHub: "https://github.com/ruubhagat/queuectl",
		},
		{
			Title:    "WebHook Solution",
			Subtitle: "Event Architecture",
			Stack:    []string{"Spring Boot", "Java", "REST APIs"},
			Desc: `Built a scalable webhook handling system capable of validating, processing, and routing
			high-volume event data using a fault-tolerant backend architecture.`,
			GitHub: "https://github.com/ruubhagat/WebHook-Solution",
		},
		{
			Title:    "Smart V2X System",
			Subtitle: "Simulation",
			Stack:    []string{"SUMO", "OMNeT++", "Veins"},
			Desc: `Developing a simulation-driven V2X system to enhance emergency response efficiency and automate
			toll collection using vehicular communication frameworks.`,
			GitHub: "#",
		},
		{
			Title:    "Real Estate Management",
			Subtitle: "Full Stack Application",
			Stack:    []string{"Spring Boot", "React", "MySQL"},
			Desc: `Created a role-based property management platform with secure authentication, smooth multi-user
			operations, and real-time database integration.`,
			GitHub: "https://github.com/ruubhagat/Real-Estate-Management-System",
		},
		{
			Title:    "Serverless Platform",
			Subtitle: "Cloud Infrastructure",
			Stack:    []string{"FastAPI", "Docker", "Streamlit", "Cloud Computing"},
			Desc: `Engineered a secure serverless execution platform using containerized environments for isolated
			code execution and real-time monitoring.`,
			GitHub: "https://github.com/ruubhagat/Serverless-platform",
		},
	},
	Skills: []SkillColumn{
		{"Languages", []string{"Java", "Python", "MySQL", "JavaScript", "HTML/CSS"}},
		{"Frameworks", []string{"Spring Boot", "MERN Stack", "RESTful APIs", "FastAPI", "Next.js", "Three.js"}},
		{"Cloud & AI", []string{"Google Cloud Platform (GCP)", "Amazon Web Services (AWS)", "Large Language Models (LLMs)", "Machine Learning", "Generative AI"}},
		{"Tools", []string{"Jira", "Git/GitHub", "Docker", "VS Code", "Microsoft Suite"}},
	},
	Honors: []Honor{
		{"DAC Scholarship", "PES University"},
		{"Certificate of Selection - Round 1 (Quiz Assessment of Sansad: Youth Indian Parliament)", "Indian Institute of Technology, Kharagpur"},
		{"Healthiathon", "Green Glitch Club, PES University"},
		{"District Level Elocution Competition Runner-Up", "St. Xavier's High School"},
	},
	Certifications: []Certification{
		{"Google Cloud Arcade Facilitator", "Google Cloud Skills Boost", "https://www.cloudskillsboost.google/public_profiles/1f0a3e1e-5d2c-4ea5-8444-cb579e47181e"},
		{"AWS Educate Compute", "Amazon Web Services", "https://www.credly.com/badges/adee0971-fd4c-402b-ac7b-9a88f3cfa1f2/public_url"},
		{"Machine Learning in Python & R", "Udemy", "https://www.udemy.com/certificate/UC-e4151bd2-acf6-4ee1-abab-3b98257844d8/"},
	},
	ContactPitch: "Open for collaborations and opportunities in Software Development & Cloud Engineering.",
	ContactDetails: []ContactDetail{
		{"Bengaluru, Karnataka, India.", ""},
		{"rutuja.bhagat.developer@gmail.com", "mailto:rutuja.bhagat.developer@gmail.com"},
		{"LinkedIn", "https://linkedin.com/in/ru-bhagat"},
		{"Medium", "https://rutujaaa.medium.com/"},
		{"Instagram", "https://www.instagram.com/ruu.bhagat/"},
	},
	Footer: "© 2025 Rutuja Bhagat • Bengaluru",
}

// Contact form copy.
const (
	SendLabel      = "Send Message"
	SentLabel      = "Message Sent!"
	SendingLabel   = "Sending..."
	SuccessNotice  = "Thank you! I will get back to you soon."
	ErrorNotice    = "Something went wrong. Please try again."
	RequiredNotice = "Please fill in your name, email and message."
)
