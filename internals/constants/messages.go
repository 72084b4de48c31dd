package constants

// Error messages exposed to clients.
const (
	MsgUnauthorized          = "Unauthorized."
	MsgUserNotExist          = "User does not exist."
	MsgUserNotAdmin          = "User does not admin."
	MsgQuestionNotActivated  = "Question is not activated."
	MsgQuestionNotFound      = "Question does not exist."
	MsgQuestionInUse         = "Question is referenced by answers."
	MsgAnswerPrivate         = "Answer is private."
	MsgAnswerNotFound        = "Answer does not exist."
	MsgCommentNotAllowed     = "Comments are not allowed."
	MsgCommentNotFound       = "Comment does not exist."
	MsgEmailAlreadyExists    = "Email already exists."
	MsgNicknameAlreadyExists = "Nickname already exists."
	MsgGenericError          = "error"
)

// Length limits.
const (
	UserNicknameMin      = 3
	UserNicknameMax      = 13
	UserEmailMin         = 3
	UserEmailMax         = 320
	UserPlainPasswordMin = 6
	UserPlainPasswordMax = 24
	UserFirebaseTokenMax = 200

	QuestionContentsMin = 1
	QuestionContentsMax = 150
	CommentContentsMin  = 1
	CommentContentsMax  = 150
)
