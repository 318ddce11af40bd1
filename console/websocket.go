package console

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  512,
	WriteBufferSize: 512,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type MessageIn struct {
	Query string `json:"query"`
	Id    int    `json:"id"`
	Type  string `json:"type"`
}

type MessageOut struct {
	Data any    `json:"data"`
	Id   int    `json:"id"`
	Type string `json:"type"`
}

// NewMessage builds the reply to data after its query ran. A failed query
// is reported with type "error".
func NewMessage(app *App, data MessageIn, err error) MessageOut {
	if err != nil {
		return MessageOut{Data: err.Error(), Id: data.Id, Type: "error"}
	}

	var newData any
	switch data.Type {
	case "count":
		newData = app.Len()
	case "items":
		newData = app.Items()
	default:
		return MessageOut{Data: fmt.Sprintf("unknown message type %q", data.Type), Id: data.Id, Type: "error"}
	}
	return MessageOut{Data: newData, Id: data.Id, Type: data.Type}
}

// StartWebsocket serves /ws until ctx is done. TLS is used when both a
// certificate and a key are configured.
func StartWebsocket(ctx context.Context, app *App, cfg WebsocketConfig) error {
	log := app.log.At("websocket")

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", wsHandler(app))

	srv := &http.Server{Addr: cfg.Address, Handler: mux}

	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdown); err != nil {
			log.Error(errors.WithStack(err))
		}
	}()

	var err error
	if cfg.Cert == "" || cfg.Key == "" {
		log.Logf("addr=%q tls=false", cfg.Address)
		err = srv.ListenAndServe()
	} else {
		log.Logf("addr=%q tls=true", cfg.Address)
		err = srv.ListenAndServeTLS(expandHome(cfg.Cert), expandHome(cfg.Key))
	}
	if err == http.ErrServerClosed {
		return nil
	}
	return log.Error(errors.WithStack(err))
}

func echo(conn *websocket.Conn, app *App) {
	log := app.log.At("echo")

	defer func() { // cleanup
		if r := recover(); r != nil {
			log.Error(errors.Errorf("recovered: %v", r))
		}
		conn.Close()
		app.setConnected(-1)
		log.Logf("remote=%q state=closed", conn.RemoteAddr())
	}()

	app.setConnected(1)
	log.Logf("remote=%q state=open", conn.RemoteAddr())

	for {
		var data MessageIn
		if err := conn.ReadJSON(&data); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Error(err)
			}
			return
		}

		var err error
		if data.Query != "" {
			app.mu.Lock()
			printInfo(app.out, "ws: %s", data.Query)
			app.mu.Unlock()
			err = app.exec(data.Query, true)
		}

		if err := conn.WriteJSON(NewMessage(app, data, err)); err != nil {
			log.Error(err)
			return
		}
	}
}

type HTTPHandler func(w http.ResponseWriter, r *http.Request)

func wsHandler(app *App) HTTPHandler {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			app.log.At("upgrade").Error(err)
			return
		}

		go echo(conn, app)
	}
}
