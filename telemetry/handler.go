package telemetry

import (
	"encoding/json"
	"log"
	"net/http"

	notify "github.com/bitly/go-notify"
	"github.com/gorilla/websocket"
)

type wsincomingmessage struct {
	messageType int
	p           []byte
	err         error
}

// Status reports a JSON snapshot of the running skirmish.
func Status(fetchStatus StatusFetcher) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		res, err := json.Marshal(fetchStatus())
		if err != nil {
			http.Error(w, "could not marshal status", http.StatusInternalServerError)
			return
		}

		w.Write(res)
	}
}

// Websocket upgrades the connection and relays every published frame until
// the viewer hangs up.
func Websocket() func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		upgrader := websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		}

		c, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Print("upgrade:", err)
			return
		}

		defer c.Close()

		clientclosedsocket := make(chan bool)
		c.SetCloseHandler(func(code int, text string) error {
			clientclosedsocket <- true
			return nil
		})

		// reading is mandatory to notice a client-side close
		incomingmsg := make(chan wsincomingmessage)
		go func(client *websocket.Conn, ch chan wsincomingmessage) {
			messageType, p, err := client.ReadMessage()
			ch <- wsincomingmessage{messageType, p, err}
		}(c, incomingmsg)

		framechan := make(chan interface{})
		notify.Start(EventFrame, framechan)
		defer notify.Stop(EventFrame, framechan)

		for {
			select {
			case <-clientclosedsocket:
				return
			case msg := <-incomingmsg:
				if msg.err != nil {
					return
				}
			case frame := <-framechan:
				frameString, ok := frame.(string)
				if !ok {
					continue
				}

				if err := c.WriteMessage(websocket.TextMessage, []byte(frameString)); err != nil {
					return
				}
			}
		}
	}
}
