package service

import "github.com/hoos-helper/advisor-api/internal/models"

// seedCourses is the built-in catalog used when Postgres is
// unavailable, mirroring the scraped CS/MATH core.
func seedCourses() []models.Course {
	return []models.Course{
		{Code: "CS 1110", Title: "Introduction to Programming", Description: "Introduction to computer science and programming using Python", Credits: 3, Department: "CS", Level: 1000, Prerequisites: []string{}, Semesters: []string{"Fall", "Spring"}},
		{Code: "CS 2100", Title: "Data Structures and Algorithms I", Description: "Introduction to data structures and algorithms", Credits: 3, Department: "CS", Level: 2000, Prerequisites: []string{"CS 1110"}, Semesters: []string{"Fall", "Spring"}},
		{Code: "CS 2120", Title: "Discrete Mathematics", Description: "Mathematical foundations for computer science", Credits: 3, Department: "CS", Level: 2000, Prerequisites: []string{"CS 2100"}, Semesters: []string{"Fall", "Spring"}},
		{Code: "CS 3100", Title: "Data Structures and Algorithms II", Description: "Advanced data structures and algorithm analysis", Credits: 3, Department: "CS", Level: 3000, Prerequisites: []string{"CS 2100", "CS 2120"}, Semesters: []string{"Fall", "Spring"}},
		{Code: "CS 4750", Title: "Database Systems", Description: "Database design, SQL, and database management systems", Credits: 3, Department: "CS", Level: 4000, Prerequisites: []string{"CS 2120"}, Semesters: []string{"Fall", "Spring"}},
		{Code: "CS 4710", Title: "Artificial Intelligence", Description: "Introduction to artificial intelligence and machine learning", Credits: 3, Department: "CS", Level: 4000, Prerequisites: []string{"CS 2120"}, Semesters: []string{"Fall"}},
		{Code: "MATH 1310", Title: "Calculus I", Description: "Differential calculus and applications", Credits: 4, Department: "MATH", Level: 1000, Prerequisites: []string{}, Semesters: []string{"Fall", "Spring", "Summer"}},
		{Code: "MATH 1320", Title: "Calculus II", Description: "Integral calculus and applications", Credits: 4, Department: "MATH", Level: 1000, Prerequisites: []string{"MATH 1310"}, Semesters: []string{"Fall", "Spring", "Summer"}},
	}
}

// seedClubs is the built-in organization directory used when Postgres
// is unavailable.
func seedClubs() []models.Club {
	return []models.Club{
		{ID: "1", Name: "UVA Computer Science Society", Description: "Community for CS students to network, learn, and build projects", Category: "Academic", Tags: []string{"Technology", "Computer Science", "Networking"}, Email: "css@virginia.edu", Website: "https://css.virginia.edu"},
		{ID: "2", Name: "Hoos Hacking", Description: "Hackathon organization and coding community", Category: "Tech", Tags: []string{"Technology", "Hackathons", "Programming"}, Website: "https://hooshacking.org"},
		{ID: "3", Name: "Madison House", Description: "Community service organization connecting students with volunteer opportunities", Category: "Service", Tags: []string{"Service", "Volunteering", "Community"}, Website: "https://madisonhouse.org"},
		{ID: "4", Name: "UVA Drama", Description: "Theater productions and performing arts", Category: "Arts", Tags: []string{"Theater", "Performance", "Arts"}, Website: "https://drama.virginia.edu"},
		{ID: "5", Name: "Data Science Club", Description: "Learn data science, machine learning, and analytics", Category: "Academic", Tags: []string{"Technology", "Data Science", "Machine Learning"}, Email: "datascience@virginia.edu"},
		{ID: "6", Name: "Entrepreneurship Club", Description: "Support student startups and innovation", Category: "Business", Tags: []string{"Business", "Entrepreneurship", "Startups"}, Website: "https://eclub.virginia.edu"},
	}
}
