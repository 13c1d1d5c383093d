package apperrors

import (
	"github.com/Sagarjari01/judgment/internal/protocol"
)

// GameError 游戏错误（会话和传输层共享）
type GameError struct {
	Code    int
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

// 预定义错误
var (
	// Not found
	ErrGameNotFound   = &GameError{Code: protocol.ErrCodeGameNotFound, Message: "game not found"}
	ErrPlayerNotFound = &GameError{Code: protocol.ErrCodePlayerNotFound, Message: "player not found"}

	// Invalid action
	ErrWrongPhase     = &GameError{Code: protocol.ErrCodeWrongPhase, Message: "action not allowed in the current phase"}
	ErrNotYourTurn    = &GameError{Code: protocol.ErrCodeNotYourTurn, Message: "it is not your turn"}
	ErrBidOutOfRange  = &GameError{Code: protocol.ErrCodeBidOutOfRange, Message: "bid is outside the allowed range"}
	ErrHookRule       = &GameError{Code: protocol.ErrCodeHookRule, Message: "last bidder cannot make the bid total equal the cards dealt"}
	ErrMustFollowSuit = &GameError{Code: protocol.ErrCodeMustFollowSuit, Message: "you must follow the lead suit"}

	// Client/state desync
	ErrCardNotInHand = &GameError{Code: protocol.ErrCodeCardNotInHand, Message: "card is not in your hand"}
)
