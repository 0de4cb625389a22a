package model

const (
	TableName    = "users"
	EntityName   = "user"
	SequenceName = "users_userid_seq"

	// FuncCurrentValue reads the value the sequence last handed out in this session.
	FuncCurrentValue = "currval"

	FieldID        = "userid"
	FieldName      = "name"
	FieldPassword  = "password"
	FieldUserType  = "usertype"
)

type User struct {
	ID       int    `db:"userid"   goqu:"skipinsert"`
	Name     string `db:"name"`
	Password string `db:"password"`
	UserType string `db:"usertype"`
}
