package prompt

import (
	"strings"
	"text/template"
)

// The two grading prompts are fixed templates: the only variability is the
// substituted answer-key context and student answer text. Instructing the
// model to answer in a rigid JSON shape is what makes the verdict parseable.

const scoreTemplate = `You are an assistant for grading essay exams. Evaluate the student's answer by comparing it against the answer key.

Answer key:
{{.AnswerKey}}

Student's answer:
{{.StudentAnswer}}

Review the answer and provide:
1. A score (0-10)
2. Constructive feedback
3. Your confidence in the evaluation (0-100%)

Respond in JSON using exactly this format:
{
  "score": [score],
  "feedback": "[feedback]",
  "confidence": [confidence]
}
`

const compareTemplate = `You are an assistant for comparing a student's answer with the answer key. Analyze the similarities and differences.

Answer key:
{{.AnswerKey}}

Student's answer:
{{.StudentAnswer}}

Analyze and provide:
1. Points the student answered correctly
2. Points the student answered incorrectly
3. Points the student did not mention
4. Suggestions for improvement

Respond in JSON using exactly this format:
{
  "correct_points": ["correct point 1", "correct point 2", ...],
  "incorrect_points": ["incorrect point 1", "incorrect point 2", ...],
  "missing_points": ["missing point 1", "missing point 2", ...],
  "suggestions": "overall suggestions"
}
`

var (
	scoreTmpl   = template.Must(template.New("score").Parse(scoreTemplate))
	compareTmpl = template.Must(template.New("compare").Parse(compareTemplate))
)

type Data struct {
	AnswerKey     string
	StudentAnswer string
}

func RenderScore(data Data) (string, error) {
	var sb strings.Builder
	if err := scoreTmpl.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func RenderCompare(data Data) (string, error) {
	var sb strings.Builder
	if err := compareTmpl.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}
