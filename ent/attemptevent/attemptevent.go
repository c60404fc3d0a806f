// Code generated by ent, DO NOT EDIT.

package attemptevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the attemptevent type in the database.
	Label = "attempt_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldStudentID holds the string denoting the student_id field in the database.
	FieldStudentID = "student_id"
	// FieldModuleID holds the string denoting the module_id field in the database.
	FieldModuleID = "module_id"
	// FieldObjective holds the string denoting the objective field in the database.
	FieldObjective = "objective"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldQuestionFormat holds the string denoting the question_format field in the database.
	FieldQuestionFormat = "question_format"
	// FieldQuestionText holds the string denoting the question_text field in the database.
	FieldQuestionText = "question_text"
	// FieldGivenAnswer holds the string denoting the given_answer field in the database.
	FieldGivenAnswer = "given_answer"
	// FieldCorrectAnswer holds the string denoting the correct_answer field in the database.
	FieldCorrectAnswer = "correct_answer"
	// FieldCorrect holds the string denoting the correct field in the database.
	FieldCorrect = "correct"
	// FieldReviewed holds the string denoting the reviewed field in the database.
	FieldReviewed = "reviewed"
	// FieldReasoningScore holds the string denoting the reasoning_score field in the database.
	FieldReasoningScore = "reasoning_score"
	// FieldMajorMistake holds the string denoting the major_mistake field in the database.
	FieldMajorMistake = "major_mistake"
	// Table holds the table name of the attemptevent in the database.
	Table = "attempt_events"
)

// Columns holds all SQL columns for attemptevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldStudentID,
	FieldModuleID,
	FieldObjective,
	FieldSessionID,
	FieldQuestionFormat,
	FieldQuestionText,
	FieldGivenAnswer,
	FieldCorrectAnswer,
	FieldCorrect,
	FieldReviewed,
	FieldReasoningScore,
	FieldMajorMistake,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	StudentIDValidator func(string) error
	// ModuleIDValidator is a validator for the "module_id" field. It is called by the builders before save.
	ModuleIDValidator func(string) error
	// ObjectiveValidator is a validator for the "objective" field. It is called by the builders before save.
	ObjectiveValidator func(int) error
	// QuestionFormatValidator is a validator for the "question_format" field. It is called by the builders before save.
	QuestionFormatValidator func(string) error
	// DefaultQuestionText holds the default value on creation for the "question_text" field.
	DefaultQuestionText string
	// DefaultGivenAnswer holds the default value on creation for the "given_answer" field.
	DefaultGivenAnswer string
	// DefaultCorrectAnswer holds the default value on creation for the "correct_answer" field.
	DefaultCorrectAnswer string
	// DefaultReviewed holds the default value on creation for the "reviewed" field.
	DefaultReviewed bool
	// DefaultReasoningScore holds the default value on creation for the "reasoning_score" field.
	DefaultReasoningScore int
	// DefaultMajorMistake holds the default value on creation for the "major_mistake" field.
	DefaultMajorMistake bool
)

// OrderOption defines the ordering options for the AttemptEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByStudentID orders the results by the student_id field.
func ByStudentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentID, opts...).ToFunc()
}

// ByModuleID orders the results by the module_id field.
func ByModuleID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModuleID, opts...).ToFunc()
}

// ByObjective orders the results by the objective field.
func ByObjective(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldObjective, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByQuestionFormat orders the results by the question_format field.
func ByQuestionFormat(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionFormat, opts...).ToFunc()
}

// ByQuestionText orders the results by the question_text field.
func ByQuestionText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionText, opts...).ToFunc()
}

// ByGivenAnswer orders the results by the given_answer field.
func ByGivenAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGivenAnswer, opts...).ToFunc()
}

// ByCorrectAnswer orders the results by the correct_answer field.
func ByCorrectAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectAnswer, opts...).ToFunc()
}

// ByCorrect orders the results by the correct field.
func ByCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrect, opts...).ToFunc()
}

// ByReviewed orders the results by the reviewed field.
func ByReviewed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewed, opts...).ToFunc()
}

// ByReasoningScore orders the results by the reasoning_score field.
func ByReasoningScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReasoningScore, opts...).ToFunc()
}

// ByMajorMistake orders the results by the major_mistake field.
func ByMajorMistake(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMajorMistake, opts...).ToFunc()
}
