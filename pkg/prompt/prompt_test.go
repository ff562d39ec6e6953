package prompt

import (
	"strings"
	"testing"

	"github.com/seleste/nanosphere/pkg/catalog"
)

func TestLectureDirective(t *testing.T) {
	course, ok := catalog.CourseByID("uon-micro-001")
	if !ok {
		t.Fatal("seed course missing")
	}
	lesson := course.Lessons[0]

	req := Lecture(lesson, course)
	if req.Feature != FeatureLecture {
		t.Errorf("feature = %q, want %q", req.Feature, FeatureLecture)
	}
	for _, want := range []string{course.Name, lesson.Code, lesson.Title, "NO CONVERSATIONAL FILLER"} {
		if !strings.Contains(req.Directive, want) {
			t.Errorf("directive missing %q", want)
		}
	}
	if !strings.Contains(req.System, "No preamble") {
		t.Errorf("system instruction missing preamble rule: %q", req.System)
	}
}

func TestThesisDirectiveSections(t *testing.T) {
	req := Thesis("Adaptive Filters", catalog.FacultyScienceTech, "DSP, LMS")
	for _, section := range []string{"ABSTRACT", "PROBLEM STATEMENT", "SPECIFIC OBJECTIVES", "THEORETICAL FRAMEWORK", "METHODOLOGY", "BIBLIOGRAPHIC DIRECTIONS"} {
		if !strings.Contains(req.Directive, section) {
			t.Errorf("thesis directive missing section %q", section)
		}
	}
	if !strings.Contains(req.Directive, "Adaptive Filters") {
		t.Error("thesis directive missing topic")
	}
}

func TestLabReportIncludesIdentity(t *testing.T) {
	req := LabReport("EXP-404", "A. Student", "UN/2024/001")
	for _, want := range []string{"EXP-404", "A. Student", "UN/2024/001", "Error Estimation"} {
		if !strings.Contains(req.Directive, want) {
			t.Errorf("lab report directive missing %q", want)
		}
	}
}

func TestImageEditWrapsDirective(t *testing.T) {
	got := ImageEdit("invert colors")
	if !strings.Contains(got, `"invert colors"`) {
		t.Errorf("directive not quoted: %q", got)
	}
	if !strings.Contains(got, "Output ONLY the image data") {
		t.Error("image protocol clause missing")
	}
}

func TestAnalysisDefault(t *testing.T) {
	if got := Analysis("  "); got != "Provide high-fidelity analysis." {
		t.Errorf("default analysis = %q", got)
	}
	if got := Analysis("describe the waveform"); got != "describe the waveform" {
		t.Errorf("analysis = %q", got)
	}
}

func TestAdvisorSystemShared(t *testing.T) {
	req := Advisor("What is aliasing?")
	if !strings.HasPrefix(req.System, AdvisorSystem()) {
		t.Error("advisor request does not carry the shared system instruction")
	}
}
