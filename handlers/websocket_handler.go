package handlers

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/huashi-art/oc-pk-contest/brackets"
	"github.com/huashi-art/oc-pk-contest/models"
	"github.com/huashi-art/oc-pk-contest/services"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Origin filtering is handled by the CORS layer for the REST
		// surface; the demo accepts any websocket origin.
		return true
	},
}

type WebSocketHandler struct {
	hub *brackets.Hub
}

func NewWebSocketHandler(hub *brackets.Hub) *WebSocketHandler {
	return &WebSocketHandler{hub: hub}
}

// ServeWs subscribes a client to live updates for one stage variant.
// Clients connect to /ws/stages/{variant}; an unrecognized variant
// signal lands in the default room rather than failing.
func (h *WebSocketHandler) ServeWs(w http.ResponseWriter, r *http.Request) {
	variantStr := chi.URLParam(r, "variant")
	if variantStr == "" {
		http.Error(w, "Missing variant", http.StatusBadRequest)
		return
	}
	variant := resolveRoomVariant(variantStr)

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Failed to upgrade connection for variant %s: %v", variantStr, err)
		return
	}

	roomID := brackets.RoomForVariant(string(variant))

	client := &brackets.Client{
		Hub:  h.hub,
		Conn: conn,
		Send: make(chan []byte, 256),
		Room: roomID,
	}
	client.Hub.Register <- client

	go client.WritePump()
	go client.ReadPump()

	log.Printf("Client registered and pumps started for room %s.", roomID)
}

// resolveRoomVariant accepts either a variant name ("evaluation-8") or
// the numeric stage signal ("2").
func resolveRoomVariant(raw string) models.StageVariant {
	for _, v := range models.VariantOrder {
		if string(v) == raw {
			return v
		}
	}
	return services.ResolveVariant(raw)
}
