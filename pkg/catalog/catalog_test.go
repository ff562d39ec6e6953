package catalog

import "testing"

func TestSeededCatalogIntegrity(t *testing.T) {
	if len(Courses) == 0 {
		t.Fatal("catalog is empty")
	}

	seenCourse := map[string]bool{}
	seenLesson := map[string]bool{}
	for _, c := range Courses {
		if c.ID == "" || c.Name == "" || c.Faculty == "" {
			t.Errorf("incomplete course: %+v", c)
		}
		if seenCourse[c.ID] {
			t.Errorf("duplicate course id %q", c.ID)
		}
		seenCourse[c.ID] = true
		for _, l := range c.Lessons {
			if l.ID == "" || l.Code == "" || l.Title == "" {
				t.Errorf("incomplete lesson in %s: %+v", c.ID, l)
			}
			if seenLesson[l.ID] {
				t.Errorf("duplicate lesson id %q", l.ID)
			}
			seenLesson[l.ID] = true
		}
	}
}

func TestLookups(t *testing.T) {
	first := Courses[0]
	got, ok := CourseByID(first.ID)
	if !ok || got.Name != first.Name {
		t.Errorf("CourseByID(%q) = %+v, %v", first.ID, got, ok)
	}
	if _, ok := CourseByID("nope"); ok {
		t.Error("unknown course id found")
	}

	lesson := first.Lessons[0]
	l, c, ok := LessonByID(lesson.ID)
	if !ok || l.Code != lesson.Code || c.ID != first.ID {
		t.Errorf("LessonByID(%q) = %+v in %q, %v", lesson.ID, l, c.ID, ok)
	}
}

func TestByFaculty(t *testing.T) {
	for _, c := range ByFaculty(FacultyScienceTech) {
		if c.Faculty != FacultyScienceTech {
			t.Errorf("course %s has faculty %q", c.ID, c.Faculty)
		}
	}
	if len(ByFaculty(Faculty("No Such Faculty"))) != 0 {
		t.Error("unknown faculty returned courses")
	}
}
