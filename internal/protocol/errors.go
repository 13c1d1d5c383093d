package protocol

// 错误码
const (
	ErrCodeUnknown    = 1000
	ErrCodeInvalidMsg = 1001

	ErrCodeGameNotFound   = 2001
	ErrCodePlayerNotFound = 2002

	ErrCodeWrongPhase     = 3001
	ErrCodeNotYourTurn    = 3002
	ErrCodeBidOutOfRange  = 3003
	ErrCodeHookRule       = 3004
	ErrCodeMustFollowSuit = 3005
	ErrCodeCardNotInHand  = 3006
)

// ErrorMessages 错误码对应的消息
var ErrorMessages = map[int]string{
	ErrCodeUnknown:        "unknown error",
	ErrCodeInvalidMsg:     "invalid message format",
	ErrCodeGameNotFound:   "game not found",
	ErrCodePlayerNotFound: "player not found",
	ErrCodeWrongPhase:     "action not allowed in the current phase",
	ErrCodeNotYourTurn:    "it is not your turn",
	ErrCodeBidOutOfRange:  "bid is outside the allowed range",
	ErrCodeHookRule:       "last bidder cannot make the bid total equal the cards dealt",
	ErrCodeMustFollowSuit: "you must follow the lead suit",
	ErrCodeCardNotInHand:  "card is not in your hand",
}
