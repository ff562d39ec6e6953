// Package prompt assembles the directive text sent with each synthesis
// request. All builders are pure: same inputs, same directive.
package prompt

import (
	"fmt"
	"strings"

	"github.com/seleste/nanosphere/pkg/catalog"
)

// Feature identifies which portal panel a request originates from.
type Feature string

const (
	FeatureAdvisor   Feature = "advisor"
	FeatureLecture   Feature = "lecture"
	FeatureThesis    Feature = "thesis"
	FeatureLabReport Feature = "lab-report"
	FeatureSlides    Feature = "slides"
	FeatureImageEdit Feature = "image-edit"
	FeatureImageGen  Feature = "image-gen"
	FeatureVideo     Feature = "video"
	FeatureSpeech    Feature = "speech"
	FeatureAnalysis  Feature = "analysis"
)

// Request is the ephemeral value object handed to the gateway. It is
// constructed fresh per invocation and never persisted.
type Request struct {
	Feature     Feature
	Directive   string
	System      string
	AspectRatio string
	Resolution  string
}

const advisorSystem = "You are the Seleste AI Academic Advisor. You represent the elite faculty of the University of Nairobi. Provide clean, professional, and technical responses formatted in high-fidelity academic Markdown."

// Suggestions are the canned studio directives offered before the user has
// typed their own.
var Suggestions = []string{
	"Enhance CMOS architecture clarity",
	"Apply retro-blueprint schematic filter",
	"Isolate 8085 microprocessor ALU pins",
	"Highlight digital signal conditioning path",
	"Augment PCB trace contrast",
	"Simulate thermal imaging on chip surface",
}

// AdvisorSystem returns the system instruction shared by the advisor features.
func AdvisorSystem() string {
	return advisorSystem
}

// Advisor builds the streaming chat request for a single question.
func Advisor(question string) Request {
	return Request{
		Feature:   FeatureAdvisor,
		Directive: question,
		System:    advisorSystem + " Provide high-density technical responses. No conversational filler.",
	}
}

// Lecture builds the full-lesson synthesis request.
func Lecture(lesson catalog.Lesson, course catalog.Course) Request {
	directive := fmt.Sprintf(`ACT AS A SENIOR ACADEMIC EDITOR.
SUBJECT: %s.
MODULE: %s - %s.

TASK: Synthesize a full-length, publication-quality academic lecture.
STRICT COMPLIANCE RULES:
1. NO CONVERSATIONAL FILLER. START DIRECTLY WITH THE TITLE.
2. NO INTRODUCTIONS LIKE "Sure", "Here is", OR "Let's dive in".
3. USE RIGOROUS TECHNICAL LANGUAGE AND MATHEMATICAL NOTATION.
4. STRUCTURE: # [Title], Abstract, Core Theory, Circuit Analysis/Schematics, Mathematical Modeling, Real-World Application, Conclusion.`,
		course.Name, lesson.Code, lesson.Title)
	return Request{
		Feature:   FeatureLecture,
		Directive: directive,
		System:    advisorSystem + " You are a machine that outputs ONLY structured Markdown academic content. No preamble.",
	}
}

// Thesis builds the research proposal request.
func Thesis(title string, faculty catalog.Faculty, keywords string) Request {
	directive := fmt.Sprintf(`FORMAL UNIVERSITY RESEARCH PROPOSAL.
TOPIC: %s.
FACULTY: %s.
KEYWORDS: %s.

STRICT INSTRUCTION: START IMMEDIATELY WITH THE DOCUMENT CONTENT.
NO GREETINGS. NO AI CHATTER.
FORMAT:
# RESEARCH PROPOSAL: [Title]
## 1. ABSTRACT
## 2. PROBLEM STATEMENT
## 3. SPECIFIC OBJECTIVES
## 4. THEORETICAL FRAMEWORK
## 5. METHODOLOGY
## 6. BIBLIOGRAPHIC DIRECTIONS`, title, faculty, keywords)
	return Request{
		Feature:   FeatureThesis,
		Directive: directive,
		System:    "Output ONLY the structured research document. No conversation.",
	}
}

// LabReport builds the laboratory report request.
func LabReport(expCode, studentName, regNo string) Request {
	directive := fmt.Sprintf(`OFFICIAL LABORATORY REPORT SYNTHESIS.
STUDENT: %s. REG: %s. EXP_CODE: %s.

STRICT RULES:
1. START DIRECTLY WITH THE REPORT.
2. ZERO AI PREAMBLE.
3. SECTIONS: Title, Objectives, List of Apparatus, Theoretical Background, Detailed Procedure, Data Processing Logic, Error Estimation, Final Remarks.`,
		studentName, regNo, expCode)
	return Request{
		Feature:   FeatureLabReport,
		Directive: directive,
		System:    "Output ONLY the technical lab report. No greetings.",
	}
}

// SlideDeck builds the schema-constrained slide generation request.
func SlideDeck(lesson catalog.Lesson, course catalog.Course) Request {
	directive := fmt.Sprintf("Generate a 10-slide academic deck for: %s - %s.\nReturn strictly JSON. No text before or after.",
		lesson.Code, lesson.Title)
	return Request{
		Feature:   FeatureSlides,
		Directive: directive,
	}
}

// ImageEdit wraps a user directive in the transformation protocol applied to
// every batch asset.
func ImageEdit(userDirective string) string {
	return fmt.Sprintf(`TRANSFORMATION PROTOCOL: Modify this technical schematic or image based on: %q.
CRITICAL: Output ONLY the image data. DO NOT provide any text, descriptions, or conversational filler.`, userDirective)
}

// Image builds a pro image generation request.
func Image(directive, aspectRatio, resolution string) Request {
	return Request{
		Feature:     FeatureImageGen,
		Directive:   directive,
		AspectRatio: aspectRatio,
		Resolution:  resolution,
	}
}

// Video builds a video synthesis request.
func Video(directive, aspectRatio string) Request {
	return Request{
		Feature:     FeatureVideo,
		Directive:   directive,
		AspectRatio: aspectRatio,
	}
}

// Analysis builds the media analysis directive, defaulting when the user
// supplied none.
func Analysis(userDirective string) string {
	if strings.TrimSpace(userDirective) == "" {
		return "Provide high-fidelity analysis."
	}
	return userDirective
}
