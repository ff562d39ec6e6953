// Package catalog holds the course and lesson data the portal presents.
package catalog

// AcademicLevel is the degree level a course is taught at.
type AcademicLevel string

const (
	LevelBachelor AcademicLevel = "Bachelor of Science"
	LevelMaster   AcademicLevel = "Master of Science"
	LevelPhD      AcademicLevel = "Doctor of Philosophy"
	LevelPostdoc  AcademicLevel = "Post-Doctoral Research"
)

// Faculty groups courses by school.
type Faculty string

const (
	FacultyScienceTech    Faculty = "Faculty of Science & Technology"
	FacultyHealthSciences Faculty = "Faculty of Health Sciences"
	FacultyEngineering    Faculty = "Faculty of Engineering"
)

// Lesson is a single module within a course.
type Lesson struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Code        string `json:"code"`
	Description string `json:"description"`
	Content     string `json:"content"`
}

// Course is a degree programme with its lessons.
type Course struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Level      AcademicLevel `json:"level"`
	Faculty    Faculty       `json:"faculty"`
	University string        `json:"university"`
	Years      int           `json:"years"`
	Lessons    []Lesson      `json:"lessons"`
}

// CourseByID returns the seeded course with the given id.
func CourseByID(id string) (Course, bool) {
	for _, c := range Courses {
		if c.ID == id {
			return c, true
		}
	}
	return Course{}, false
}

// LessonByID returns a lesson and its parent course.
func LessonByID(id string) (Lesson, Course, bool) {
	for _, c := range Courses {
		for _, l := range c.Lessons {
			if l.ID == id {
				return l, c, true
			}
		}
	}
	return Lesson{}, Course{}, false
}

// ByFaculty returns all seeded courses in a faculty, in catalog order.
func ByFaculty(f Faculty) []Course {
	var out []Course
	for _, c := range Courses {
		if c.Faculty == f {
			out = append(out, c)
		}
	}
	return out
}
