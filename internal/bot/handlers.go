package bot

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"sync/atomic"

	"blackjack-round/internal/config"
	"blackjack-round/internal/game"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// sender is the part of *tgbotapi.BotAPI the handler talks to.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type Handler struct {
	bot     sender
	cfg     *config.Config
	rounds  *game.Manager
	newDeck func() game.CardSource

	// a Round is not safe for concurrent use, updates for one chat are serialized
	chatLocks sync.Map
	dealt     atomic.Int64
}

func NewHandler(bot sender, cfg *config.Config) *Handler {
	h := &Handler{
		bot:    bot,
		cfg:    cfg,
		rounds: game.NewManager(),
	}
	h.newDeck = h.freshDeck
	return h
}

// freshDeck gives every round its own deck. With a configured seed each
// round gets seed+n so rounds stay reproducible without sharing a generator.
func (h *Handler) freshDeck() game.CardSource {
	n := h.dealt.Add(1) - 1
	if h.cfg.Seed == nil {
		return game.NewDeck(nil)
	}

	seed := *h.cfg.Seed + n
	return game.NewDeck(game.NewRand(&seed))
}

func (h *Handler) lock(chatID int64) func() {
	v, _ := h.chatLocks.LoadOrStore(chatID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// ============== HELPERS ==============

func (h *Handler) send(chatID int64, text string) {
	if _, err := h.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		log.Printf("Failed to send message: %v", err)
	}
}

func (h *Handler) sendWithKeyboard(chatID int64, text string, kb tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = kb
	if _, err := h.bot.Send(msg); err != nil {
		log.Printf("Failed to send message: %v", err)
	}
}

func (h *Handler) answerCallback(id, text string) {
	if _, err := h.bot.Request(tgbotapi.NewCallback(id, text)); err != nil {
		log.Printf("Failed to answer callback: %v", err)
	}
}

// ============== FORMATTING ==============

func formatCards(cards []game.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

func formatRound(r *game.Round) string {
	return fmt.Sprintf("🎴 You: %s (%d)\n🃏 Dealer: %s ?",
		formatCards(r.PlayerHand()), r.PlayerTotal(), r.DealerUpCard())
}

func formatOutcome(out game.Outcome) string {
	msg := fmt.Sprintf("🎴 You: %s (%d)\n🃏 Dealer: %s (%d)\n\n",
		formatCards(out.PlayerCards), out.PlayerTotal,
		formatCards(out.DealerCards), out.DealerTotal)

	switch out.Reason {
	case game.PhasePlayerBlackjack:
		msg += "🎰 BLACKJACK!\n"
	case game.PhasePlayerBust:
		msg += "💥 Bust!\n"
	case game.PhaseDealerBlackjack:
		msg += "🎰 Dealer has blackjack!\n"
	case game.PhaseDealerBust:
		msg += "💥 Dealer busts!\n"
	}

	switch out.Result {
	case game.ResultPlayerWins:
		msg += "🎉 You win!"
	case game.ResultDealerWins:
		msg += "😔 Dealer wins!"
	case game.ResultPush:
		msg += "🤝 Push!"
	}
	return msg
}

// ============== COMMANDS ==============

func (h *Handler) HandleStart(chatID int64) {
	h.send(chatID,
		"🎰 Welcome to Blackjack!\n\n"+
			"/play — deal a round\n"+
			"/help — rules")
}

func (h *Handler) HandleHelp(chatID int64) {
	h.send(chatID,
		"📖 Blackjack rules:\n\n"+
			"🎯 Beat the dealer's total without going over 21\n\n"+
			"📊 Points:\n"+
			"• 2-10 — face value\n"+
			"• J, Q, K — 10\n"+
			"• A — 11 or 1\n\n"+
			"🎮 Actions:\n"+
			"• Hit — take a card\n"+
			"• Stand — let the dealer play\n\n"+
			"🃏 Dealer stays on 17 or above")
}

func (h *Handler) HandlePlay(chatID int64) {
	unlock := h.lock(chatID)
	defer unlock()

	h.play(chatID)
}

func (h *Handler) play(chatID int64) {
	r, err := game.NewRound(h.newDeck())
	if err != nil {
		log.Printf("chat %d: failed to start round: %v", chatID, err)
		h.send(chatID, "❌ The round could not be dealt. Try /play again.")
		return
	}
	log.Printf("chat %d: round %s dealt", chatID, r.ID())

	if out, ok := r.Outcome(); ok {
		h.finish(chatID, r, out)
		return
	}

	h.rounds.Set(chatID, r)
	h.sendWithKeyboard(chatID, formatRound(r), GameKeyboard())
}

func (h *Handler) finish(chatID int64, r *game.Round, out game.Outcome) {
	h.rounds.Delete(chatID)
	log.Printf("chat %d: round %s resolved: %s (%s)", chatID, r.ID(), out.Result, out.Reason)
	h.sendWithKeyboard(chatID, formatOutcome(out), EndGameKeyboard())
}

func (h *Handler) fail(chatID int64, r *game.Round, err error) {
	h.rounds.Delete(chatID)
	log.Printf("chat %d: round %s failed: %v", chatID, r.ID(), err)
	h.sendWithKeyboard(chatID, "❌ The round could not be completed.", EndGameKeyboard())
}

// ============== CALLBACKS ==============

func (h *Handler) HandleCallback(callback *tgbotapi.CallbackQuery) {
	if callback.Message == nil || callback.Message.Chat == nil {
		h.answerCallback(callback.ID, "")
		return
	}
	chatID := callback.Message.Chat.ID

	unlock := h.lock(chatID)
	defer unlock()

	if callback.Data == CallbackPlayAgain {
		h.answerCallback(callback.ID, "")
		h.play(chatID)
		return
	}

	r := h.rounds.Get(chatID)
	if r == nil || r.IsResolved() {
		h.answerCallback(callback.ID, "No active round")
		return
	}

	switch callback.Data {
	case CallbackHit:
		h.handleHit(chatID, r)
	case CallbackStand:
		h.handleStand(chatID, r)
	}

	h.answerCallback(callback.ID, "")
}

func (h *Handler) handleHit(chatID int64, r *game.Round) {
	if _, err := r.Hit(); err != nil {
		h.fail(chatID, r, err)
		return
	}

	if out, ok := r.Outcome(); ok {
		h.finish(chatID, r, out)
		return
	}

	h.sendWithKeyboard(chatID, formatRound(r), GameKeyboard())
}

func (h *Handler) handleStand(chatID int64, r *game.Round) {
	out, err := r.Resolve()
	if err != nil {
		h.fail(chatID, r, err)
		return
	}
	h.finish(chatID, r, out)
}

// ============== MESSAGES ==============

func (h *Handler) HandleMessage(msg *tgbotapi.Message) {
	parts := strings.Fields(msg.Text)
	if len(parts) == 0 || msg.Chat == nil {
		return
	}
	chatID := msg.Chat.ID

	switch strings.ToLower(parts[0]) {
	case "/start":
		h.HandleStart(chatID)
	case "/help":
		h.HandleHelp(chatID)
	case "/play":
		h.HandlePlay(chatID)
	}
}
