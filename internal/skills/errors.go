package skills

import "fmt"

// KnowledgeBaseError represents an invalid or unusable knowledge base.
type KnowledgeBaseError struct {
	Message string
	Skill   string
	Cause   error
}

func (e *KnowledgeBaseError) Error() string {
	switch {
	case e.Skill != "" && e.Cause != nil:
		return fmt.Sprintf("knowledge base error for skill %q: %s: %v", e.Skill, e.Message, e.Cause)
	case e.Skill != "":
		return fmt.Sprintf("knowledge base error for skill %q: %s", e.Skill, e.Message)
	case e.Cause != nil:
		return fmt.Sprintf("knowledge base error: %s: %v", e.Message, e.Cause)
	default:
		return fmt.Sprintf("knowledge base error: %s", e.Message)
	}
}

func (e *KnowledgeBaseError) Unwrap() error {
	return e.Cause
}

// SchemaValidationError reports knowledge base JSON that failed schema validation.
type SchemaValidationError struct {
	Path   string
	Issues []string
}

func (e *SchemaValidationError) Error() string {
	return fmt.Sprintf("knowledge base %s failed schema validation: %d issue(s): %v", e.Path, len(e.Issues), e.Issues)
}
