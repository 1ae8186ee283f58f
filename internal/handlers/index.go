package handlers

import (
	"math/rand/v2"
	"net/http"

	"github.com/google/uuid"

	"github.com/aaronzipp/blobarena/internal/config"
	"github.com/aaronzipp/blobarena/internal/game"
	"github.com/aaronzipp/blobarena/internal/models"
	"github.com/aaronzipp/blobarena/internal/render"
)

// Context holds shared application dependencies
type Context struct {
	Arena  *models.Arena
	Config *config.Config
	Rand   *rand.Rand // only used with the arena lock held
	NewID  func() string
}

// NewContext builds a context around a fresh arena stocked with food
func NewContext(cfg *config.Config) *Context {
	ctx := &Context{
		Arena:  models.NewArena(),
		Config: cfg,
		Rand:   rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		NewID:  func() string { return uuid.New().String() },
	}
	ctx.Arena.Lock()
	game.Replenish(ctx.Arena.World, ctx.Rand)
	ctx.Arena.Unlock()
	return ctx
}

// HandleIndex serves the status page
func (ctx *Context) HandleIndex(w http.ResponseWriter, r *http.Request) {
	ctx.Arena.RLock()
	players, foods := game.Snapshot(ctx.Arena.World)
	ctx.Arena.RUnlock()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(render.StatusPage(ctx.Config.PublicURL, players, len(foods))))
}
