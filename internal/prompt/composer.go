// Package prompt builds the final text sent to providers from raw questions,
// conversation history, follow-up context and style directives.
// Everything here is pure: no I/O, identical inputs yield identical output.
package prompt

import (
	"fmt"
	"strings"
)

// ConversationTurn is one past exchange supplied by the caller.
// The core holds no turn history itself; callers pass it back on each request.
type ConversationTurn struct {
	// Question is the question asked in that turn.
	Question string `json:"question"`

	// Agent1Response is the first agent's answer in that turn.
	Agent1Response string `json:"agent1_response"`

	// Agent2Response is the second agent's answer in that turn.
	Agent2Response string `json:"agent2_response"`
}

// FollowUpContext carries a single prior exchange for follow-up questions.
type FollowUpContext struct {
	// OriginalQuestion is the question the prior responses answered.
	OriginalQuestion string `json:"original_question"`

	// Agent1Response is the first agent's prior answer.
	Agent1Response string `json:"agent1_response"`

	// Agent2Response is the second agent's prior answer.
	Agent2Response string `json:"agent2_response"`
}

// Compose merges a raw question with best-practice directives, conversation
// history or single-turn follow-up context into one prompt string.
//
// Exactly one context branch is taken, in precedence order: a non-empty
// history wins over a follow-up context, which wins over the verbatim
// question. The best-practices clause is appended after the branch, exactly
// once, regardless of which branch fired.
func Compose(question string, bestPractices []string, history []ConversationTurn, context *FollowUpContext) string {
	var b strings.Builder

	switch {
	case len(history) > 0:
		b.WriteString("Conversation history:\n")
		for i, turn := range history {
			fmt.Fprintf(&b, "\nQ%d: %s\n", i+1, turn.Question)
			fmt.Fprintf(&b, "Your previous response: %s\n", turn.Agent1Response)
			fmt.Fprintf(&b, "Other agent's response: %s\n", turn.Agent2Response)
		}
		fmt.Fprintf(&b, "\nCurrent question: %s", question)

	case context != nil:
		fmt.Fprintf(&b, "Previous question: %s\n", context.OriginalQuestion)
		fmt.Fprintf(&b, "Your previous response: %s\n", context.Agent1Response)
		fmt.Fprintf(&b, "Other agent's response: %s\n\n", context.Agent2Response)
		fmt.Fprintf(&b, "Follow-up question: %s", question)

	default:
		b.WriteString(question)
	}

	if len(bestPractices) > 0 {
		b.WriteString("\n\nAlso: ")
		b.WriteString(strings.Join(bestPractices, " "))
	}

	return b.String()
}

// DefaultAssessmentInstruction is used when the caller supplies no criteria.
const DefaultAssessmentInstruction = "Assess its accuracy and completeness. Suggest improvements or revisions if needed."

// CriteriaClause renders the assessment focus block.
// With criteria it produces a bulleted focus list; without, the fixed
// default instruction.
func CriteriaClause(criteria []string) string {
	if len(criteria) == 0 {
		return DefaultAssessmentInstruction
	}

	var b strings.Builder
	b.WriteString("Focus your assessment on these specific aspects:")
	for _, c := range criteria {
		b.WriteString("\n- ")
		b.WriteString(c)
	}
	return b.String()
}

// Assessment renders the cross-assessment prompt: the quoted original
// question, the quoted answer under review, then the criteria clause.
func Assessment(question, answer string, criteria []string) string {
	return fmt.Sprintf("I asked the following question:\n\"%s\"\n\nI received this answer:\n\"%s\"\n\n%s",
		question, answer, CriteriaClause(criteria))
}
