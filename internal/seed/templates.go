package seed

import "github.com/okan/enrollment/internal/app/models"

// Departments returns the fixed department fixture set.
func Departments() []models.Department {
	return []models.Department{
		{DeptID: 1, DeptName: "Computer Science"},
		{DeptID: 2, DeptName: "Engineering"},
		{DeptID: 3, DeptName: "Mathematics"},
		{DeptID: 4, DeptName: "Physics"},
		{DeptID: 5, DeptName: "Biology"},
		{DeptID: 6, DeptName: "Psychology"},
		{DeptID: 7, DeptName: "Business"},
		{DeptID: 8, DeptName: "Arts"},
	}
}

// CourseTemplate pairs a course code with its title.
type CourseTemplate struct {
	Code  string
	Title string
}

// CourseTitles returns the fixed course catalog fixture set.
func CourseTitles() []CourseTemplate {
	return []CourseTemplate{
		{Code: "CS101", Title: "Intro to CS"},
		{Code: "CS102", Title: "Data Structures"},
		{Code: "ENG101", Title: "Basic Engineering"},
		{Code: "MATH101", Title: "Calculus I"},
		{Code: "PHY101", Title: "General Physics"},
		{Code: "BIO101", Title: "Biology I"},
		{Code: "PSY101", Title: "Intro to Psychology"},
		{Code: "BUS101", Title: "Business 101"},
		{Code: "ART101", Title: "Art History"},
		{Code: "CS201", Title: "Algorithms"},
		{Code: "ENG201", Title: "Thermodynamics"},
		{Code: "MATH201", Title: "Calculus II"},
	}
}

var firstNames = []string{
	"Ada", "Ben", "Cem", "Dana", "Emre", "Figen", "Gul", "Hakan",
	"Ipek", "Jale", "Kaan", "Leyla", "Mert", "Nil", "Omer", "Pinar",
	"Rana", "Selim", "Tuna", "Umut", "Vera", "Yusuf", "Zeynep", "Arda",
}

var lastNames = []string{
	"Acar", "Bulut", "Celik", "Demir", "Erdem", "Fidan", "Gunes",
	"Kaya", "Koc", "Ozturk", "Polat", "Sahin", "Tekin", "Uzun",
	"Yildiz", "Yilmaz",
}
