package routes

import (
	"encoding/json"
	"errors"
	"net/http"

	"sevai/sevai/config"
	"sevai/sevai/controllers"
	"sevai/sevai/middlewares"
	"sevai/sevai/services/triage"
	"sevai/sevai/utils/types"

	"github.com/coder/websocket"
	"github.com/go-chi/chi/v5"
)

func ChatRoutes(ctrl *controllers.ChatController, cfg config.Config) chi.Router {
	r := chi.NewRouter()
	r.Group(func(gr chi.Router) {
		gr.Use(middlewares.AuthMiddleware(cfg))
		// POST /message : one triage exchange
		gr.Post("/message", func(w http.ResponseWriter, r *http.Request) {
			var req types.ChatRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			if userID, ok := r.Context().Value(middlewares.UserIDKey).(string); ok && req.UserID == "" {
				req.UserID = userID
			}
			resp, err := ctrl.Message(r.Context(), req)
			if err != nil {
				if errors.Is(err, triage.ErrEmptyMessage) {
					http.Error(w, err.Error(), http.StatusBadRequest)
					return
				}
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(resp)
		})
	})

	// GET /ws : websocket variant, one JSON request per frame, one
	// structured reply back.
	r.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
		if err != nil {
			return
		}
		defer conn.Close(websocket.StatusInternalError, "internal error")

		ctx := r.Context()
		for {
			typ, data, err := conn.Read(ctx)
			if err != nil {
				return
			}
			if typ != websocket.MessageText {
				conn.Close(websocket.StatusUnsupportedData, "unsupported data")
				return
			}
			var req types.ChatRequest
			if err := json.Unmarshal(data, &req); err != nil {
				conn.Write(ctx, websocket.MessageText, []byte(`{"error":"invalid json"}`))
				continue
			}
			resp, err := ctrl.Message(ctx, req)
			if err != nil {
				conn.Write(ctx, websocket.MessageText, []byte(`{"error":"`+err.Error()+`"}`))
				continue
			}
			payload, err := json.Marshal(resp)
			if err != nil {
				continue
			}
			if err := conn.Write(ctx, websocket.MessageText, payload); err != nil {
				return
			}
		}
	})
	return r
}
