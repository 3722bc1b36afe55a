// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package seed

import "github.com/danielhkuo/talentflow/models"

var jobTitles = []string{
	"Senior Frontend Developer", "Backend Engineer", "Full Stack Developer",
	"DevOps Engineer", "Product Manager", "UI/UX Designer", "Data Scientist",
	"Mobile Developer", "QA Engineer", "Technical Writer", "Marketing Manager",
	"Sales Representative", "Customer Success Manager", "HR Specialist",
	"Finance Analyst", "Operations Manager", "Business Analyst",
	"System Administrator", "Security Engineer", "Machine Learning Engineer",
	"Project Manager", "Scrum Master", "Content Creator", "Social Media Manager",
	"Graphic Designer",
}

var jobTags = []string{
	"React", "Node.js", "Python", "JavaScript", "TypeScript",
	"AWS", "Docker", "Kubernetes", "MongoDB", "PostgreSQL",
}

var jobLocations = []string{"Remote", "San Francisco", "New York", "London", "Berlin", "Toronto"}

var firstNames = []string{
	"Aarav", "Priya", "Rohan", "Sneha", "Kiran", "Ananya", "Arjun", "Kavya",
	"Vikram", "Pooja", "Rahul", "Shreya", "Rajesh", "Deepika", "Amit", "Sonia",
	"Vishal", "Meera", "Suresh", "Neha", "Kumar", "Ritu", "Pradeep", "Anita",
	"Manoj", "Sunita", "Ravi", "Kavita", "Sandeep", "Poonam", "Naveen", "Rekha",
	"Vinod", "Sarita", "Ashok", "Usha", "Dinesh", "Geeta", "Mukesh", "Lata",
	"Kamala", "Ramesh", "Indira", "Gopal", "Sushila", "Hari", "Pushpa", "Ram",
	"Lakshmi", "Krishna", "Radha", "Yash", "Isha", "Aditya", "Maya", "Rohit",
	"Kriti", "Siddharth", "Nisha", "Abhishek", "Riya", "Vivek", "Tanya", "Akash",
	"Divya", "Rishabh", "Pallavi", "Nikhil", "Shilpa", "Sagar", "Monika", "Pankaj",
	"Rashmi", "Ankit", "Suman", "Vikash", "Preeti", "Rakesh", "Jyoti", "Sachin",
	"Manju", "Deepak", "Raj",
}

var lastNames = []string{
	"Sharma", "Kumar", "Singh", "Patel", "Gupta", "Agarwal", "Jain", "Verma",
	"Yadav", "Mishra", "Pandey", "Shah", "Reddy", "Nair", "Iyer", "Menon",
	"Rao", "Choudhary", "Malhotra", "Arora", "Bansal", "Bhatia", "Chopra", "Dixit",
	"Goyal", "Khanna", "Lal", "Mehta", "Nanda", "Oberoi", "Puri", "Rastogi",
	"Saxena", "Tandon", "Uppal", "Vohra", "Wadhwa", "Zaveri", "Ahuja", "Bajaj",
	"Chandra", "Dutta", "Gandhi", "Hegde", "Joshi", "Kakkar", "Lamba", "Mittal",
	"Narayan", "Ojha", "Prasad", "Rana", "Sethi", "Tiwari", "Vyas", "Walia",
	"Zutshi", "Bhardwaj", "Chawla", "Dhingra", "Garg", "Handa", "Jindal", "Kohli",
	"Luthra", "Mahajan", "Narang", "Pahwa", "Rawat", "Sood", "Thakur",
}

var emailDomains = []string{"gmail.com", "yahoo.in", "hotmail.com", "outlook.com", "rediffmail.com"}

var candidateLocations = []string{
	"Mumbai", "Delhi", "Bangalore", "Chennai", "Hyderabad",
	"Pune", "Kolkata", "Ahmedabad", "Remote", "Gurgaon",
}

var skills = []string{
	"JavaScript", "React", "Node.js", "Python", "SQL", "TypeScript", "Vue.js", "Angular",
	"Java", "C#", "PHP", "Ruby", "Go", "Rust", "Swift", "Kotlin", "Dart", "Flutter",
	"AWS", "Azure", "Docker", "Kubernetes", "Git", "MongoDB", "PostgreSQL", "MySQL",
	"Redis", "Elasticsearch", "GraphQL", "REST API", "Microservices", "DevOps", "CI/CD",
	"Machine Learning", "Data Science", "AI", "Blockchain", "Web3", "Mobile Development",
	"UI/UX Design", "Figma", "Sketch", "Adobe Creative Suite", "Photoshop", "Illustrator",
	"Project Management", "Agile", "Scrum", "Kanban", "Jira", "Confluence", "Slack",
	"Communication", "Leadership", "Team Management", "Problem Solving", "Analytical Thinking",
}

var assessmentTitles = []string{
	"Frontend Developer Assessment", "Backend Engineer Challenge", "Full Stack Technical Interview",
	"DevOps Engineer Evaluation", "Data Scientist Assessment", "Product Manager Interview",
	"UI/UX Designer Portfolio Review", "Mobile Developer Challenge", "QA Engineer Test",
	"System Administrator Assessment", "Security Engineer Evaluation", "Machine Learning Engineer Challenge",
}

func intPtr(v int) *int { return &v }
func floatPtr(v float64) *float64 { return &v }

// standardSections builds a fresh copy of the five-section questionnaire
// attached to every seeded assessment.
func standardSections() []models.Section {
	return []models.Section{
		{
			ID:    "section-1",
			Title: "Technical Knowledge",
			Questions: []models.Question{
				{
					ID: "q1", Type: models.QuestionSingleChoice, Required: true,
					Title:         "What is the time complexity of binary search?",
					Options:       []string{"O(n)", "O(log n)", "O(n log n)", "O(n²)"},
					CorrectAnswer: intPtr(1),
				},
				{
					ID: "q2", Type: models.QuestionMultiChoice, Required: true,
					Title:          "Which of the following are JavaScript frameworks?",
					Options:        []string{"React", "Angular", "Vue.js", "Laravel", "Express", "Django"},
					CorrectAnswers: []int{0, 1, 2},
				},
				{
					ID: "q3", Type: models.QuestionShortText, Required: true,
					Title:     "What is your favorite programming language and why?",
					MaxLength: intPtr(200),
				},
				{
					ID: "q4", Type: models.QuestionSingleChoice, Required: true,
					Title:         "Which HTTP method is used for creating new resources?",
					Options:       []string{"GET", "POST", "PUT", "DELETE"},
					CorrectAnswer: intPtr(1),
				},
			},
		},
		{
			ID:    "section-2",
			Title: "Problem Solving",
			Questions: []models.Question{
				{
					ID: "q5", Type: models.QuestionLongText, Required: true,
					Title:     "Describe how you would approach debugging a performance issue in a web application.",
					MaxLength: intPtr(1000),
				},
				{
					ID: "q6", Type: models.QuestionNumericRange, Required: true,
					Title: "Rate your experience with React (1-10)",
					Min:   floatPtr(1),
					Max:   floatPtr(10),
				},
				{
					ID: "q7", Type: models.QuestionSingleChoice, Required: true,
					Title:       "Have you worked with TypeScript?",
					Options:     []string{"Yes", "No"},
					Conditional: &models.Conditional{ShowQuestionID: "q8", ShowIfAnswer: 0},
				},
				{
					ID: "q8", Type: models.QuestionShortText,
					Title:     "What do you like most about TypeScript?",
					MaxLength: intPtr(300),
					DependsOn: "q7",
				},
				{
					ID: "q9", Type: models.QuestionLongText, Required: true,
					Title:     "Explain the concept of closures in JavaScript with an example.",
					MaxLength: intPtr(800),
				},
			},
		},
		{
			ID:    "section-3",
			Title: "System Design",
			Questions: []models.Question{
				{
					ID: "q10", Type: models.QuestionLongText, Required: true,
					Title:     "How would you design a URL shortener service like bit.ly?",
					MaxLength: intPtr(1500),
				},
				{
					ID: "q11", Type: models.QuestionSingleChoice, Required: true,
					Title:         "Which database would you choose for a high-traffic e-commerce site?",
					Options:       []string{"MySQL", "PostgreSQL", "MongoDB", "Redis", "It depends on the use case"},
					CorrectAnswer: intPtr(4),
				},
				{
					ID: "q12", Type: models.QuestionMultiChoice, Required: true,
					Title:          "Which of the following are important for scalability?",
					Options:        []string{"Load balancing", "Caching", "Database indexing", "Code optimization", "All of the above"},
					CorrectAnswers: []int{0, 1, 2, 3, 4},
				},
			},
		},
		{
			ID:    "section-4",
			Title: "Experience & Portfolio",
			Questions: []models.Question{
				{
					ID: "q13", Type: models.QuestionFileUpload,
					Title:         "Please upload your portfolio or code samples",
					AcceptedTypes: []string{".pdf", ".zip", ".github", ".gitlab"},
				},
				{
					ID: "q14", Type: models.QuestionLongText, Required: true,
					Title:     "Tell us about a challenging project you worked on and how you overcame the obstacles.",
					MaxLength: intPtr(1500),
				},
				{
					ID: "q15", Type: models.QuestionNumericRange, Required: true,
					Title: "Years of professional experience",
					Min:   floatPtr(0),
					Max:   floatPtr(20),
				},
				{
					ID: "q16", Type: models.QuestionShortText, Required: true,
					Title:     "What is your biggest professional achievement?",
					MaxLength: intPtr(400),
				},
			},
		},
		{
			ID:    "section-5",
			Title: "Behavioral & Culture Fit",
			Questions: []models.Question{
				{
					ID: "q17", Type: models.QuestionLongText, Required: true,
					Title:     "Describe a time when you had to work with a difficult team member. How did you handle it?",
					MaxLength: intPtr(1000),
				},
				{
					ID: "q18", Type: models.QuestionSingleChoice, Required: true,
					Title:         "How do you prefer to receive feedback?",
					Options:       []string{"In person", "Written", "During regular 1:1s", "Immediately when issues arise", "All of the above"},
					CorrectAnswer: intPtr(4),
				},
				{
					ID: "q19", Type: models.QuestionShortText, Required: true,
					Title:     "What motivates you in your work?",
					MaxLength: intPtr(300),
				},
				{
					ID: "q20", Type: models.QuestionNumericRange, Required: true,
					Title: "Rate your communication skills (1-10)",
					Min:   floatPtr(1),
					Max:   floatPtr(10),
				},
			},
		},
	}
}
