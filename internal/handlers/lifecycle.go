package handlers

import (
	"log"

	"github.com/aaronzipp/blobarena/internal/game"
	"github.com/aaronzipp/blobarena/internal/hub"
	"github.com/aaronzipp/blobarena/internal/models"
	"github.com/aaronzipp/blobarena/internal/protocol"
)

// join spawns a player for a new connection, sends it the world and announces it to everyone else
func (ctx *Context) join(client chan models.Message) models.Player {
	playerID := ctx.NewID()

	ctx.Arena.Lock()
	defer ctx.Arena.Unlock()

	p := game.SpawnPlayer(ctx.Arena.World, playerID, ctx.Rand)
	hub.Register(ctx.Arena, client, playerID)

	players, foods := game.Snapshot(ctx.Arena.World)
	hub.Send(client, models.Message{
		Event:   protocol.EventInit,
		Payload: protocol.Init{Players: players, Foods: foods, PlayerID: playerID},
	})
	hub.BroadcastExcept(ctx.Arena, client, protocol.EventNewPlayer, *p)

	log.Printf("Player joined: id=%s players=%d", playerID, ctx.Arena.World.PlayerCount())
	return *p
}

// leave drops the connection and its player, then tells the remaining clients
func (ctx *Context) leave(client chan models.Message, playerID string) {
	ctx.Arena.Lock()
	defer ctx.Arena.Unlock()

	hub.Unregister(ctx.Arena, client)
	removed := ctx.Arena.World.RemovePlayer(playerID)
	hub.Broadcast(ctx.Arena, protocol.EventPlayerLeft, protocol.PlayerRef{ID: playerID})

	log.Printf("Player left: id=%s wasAlive=%v players=%d", playerID, removed, ctx.Arena.World.PlayerCount())
}

// move runs one tick for the player and broadcasts the outcome.
// The whole tick, including queueing its events, happens under the arena lock.
func (ctx *Context) move(playerID string, mv protocol.Move) error {
	x, y, err := mv.Target()
	if err != nil {
		return err
	}

	ctx.Arena.Lock()
	defer ctx.Arena.Unlock()

	result, err := game.Move(ctx.Arena.World, playerID, x, y, ctx.Rand)
	if err != nil {
		return err
	}
	for _, id := range result.EatenIDs {
		log.Printf("Player eaten: id=%s by=%s size=%.0f", id, playerID, result.PlayerSize)
		hub.Broadcast(ctx.Arena, protocol.EventPlayerEaten, protocol.PlayerRef{ID: id})
	}

	players, foods := game.Snapshot(ctx.Arena.World)
	hub.Broadcast(ctx.Arena, protocol.EventUpdate, protocol.Update{Players: players, Foods: foods})
	return nil
}
