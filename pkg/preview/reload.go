package preview

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// reloadPath is the WebSocket endpoint the client script connects to.
const reloadPath = "/_tagtree/reload"

type reloadKind string

const (
	reloadFull  reloadKind = "reload"
	reloadCSS   reloadKind = "css"
	reloadError reloadKind = "error"
	reloadClear reloadKind = "clear"
)

// reloadMessage is sent to browsers over the live-reload socket.
type reloadMessage struct {
	Type  reloadKind `json:"type"`
	Error string     `json:"error,omitempty"`
	File  string     `json:"file,omitempty"`
}

// reloadHub tracks connected browsers and broadcasts reload messages.
type reloadHub struct {
	mu       sync.RWMutex
	clients  map[*websocket.Conn]bool
	upgrader websocket.Upgrader
}

func newReloadHub() *reloadHub {
	return &reloadHub{
		clients: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Local preview only; any origin may connect.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// handleWebSocket upgrades the connection and holds it open until the
// browser goes away.
func (h *reloadHub) handleWebSocket(w http.ResponseWriter, req *http.Request) {
	conn, err := h.upgrader.Upgrade(w, req, nil)
	if err != nil {
		return
	}

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
	conn.Close()
}

func (h *reloadHub) notifyReload() {
	h.broadcast(reloadMessage{Type: reloadFull})
}

func (h *reloadHub) notifyCSS(file string) {
	h.broadcast(reloadMessage{Type: reloadCSS, File: file})
}

func (h *reloadHub) notifyError(msg string) {
	h.broadcast(reloadMessage{Type: reloadError, Error: msg})
}

func (h *reloadHub) clearError() {
	h.broadcast(reloadMessage{Type: reloadClear})
}

func (h *reloadHub) broadcast(msg reloadMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}

	h.mu.RLock()
	clients := make([]*websocket.Conn, 0, len(h.clients))
	for conn := range h.clients {
		clients = append(clients, conn)
	}
	h.mu.RUnlock()

	for _, conn := range clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			h.mu.Lock()
			delete(h.clients, conn)
			h.mu.Unlock()
			conn.Close()
		}
	}
}

func (h *reloadHub) clientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *reloadHub) close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.clients {
		conn.Close()
		delete(h.clients, conn)
	}
}

// clientScript is injected into served pages when live reload is
// enabled.
const clientScript = `
<script>
(function() {
    'use strict';

    var reconnectDelay = 1000;
    var maxReconnectDelay = 30000;
    var ws = null;

    function connect() {
        var protocol = location.protocol === 'https:' ? 'wss:' : 'ws:';
        ws = new WebSocket(protocol + '//' + location.host + '/_tagtree/reload');

        ws.onopen = function() {
            console.log('[tagtree] Live reload connected');
            reconnectDelay = 1000;
            clearErrorOverlay();
        };

        ws.onmessage = function(e) {
            var msg;
            try {
                msg = JSON.parse(e.data);
            } catch (err) {
                return;
            }

            switch (msg.type) {
                case 'reload':
                    console.log('[tagtree] Reloading...');
                    location.reload();
                    break;

                case 'css':
                    console.log('[tagtree] Reloading CSS...');
                    reloadCSS();
                    break;

                case 'error':
                    console.error('[tagtree] Rebuild error:', msg.error);
                    showErrorOverlay(msg.error);
                    break;

                case 'clear':
                    clearErrorOverlay();
                    break;
            }
        };

        ws.onclose = function() {
            setTimeout(function() {
                reconnectDelay = Math.min(reconnectDelay * 2, maxReconnectDelay);
                connect();
            }, reconnectDelay);
        };

        ws.onerror = function() {
            ws.close();
        };
    }

    function reloadCSS() {
        var links = document.querySelectorAll('link[rel="stylesheet"]');
        links.forEach(function(link) {
            var url = new URL(link.href);
            url.searchParams.set('_reload', Date.now());
            link.href = url.toString();
        });
    }

    function showErrorOverlay(error) {
        clearErrorOverlay();

        var overlay = document.createElement('div');
        overlay.id = 'tagtree-error-overlay';
        overlay.style.cssText = 'position:fixed;top:0;left:0;right:0;bottom:0;background:rgba(0,0,0,0.9);color:#fff;font-family:monospace;font-size:14px;padding:20px;overflow:auto;z-index:999999;';

        var pre = document.createElement('pre');
        pre.style.cssText = 'white-space:pre-wrap;word-wrap:break-word;background:#1a1a1a;padding:20px;border-radius:8px;border:1px solid #333;';
        pre.textContent = error;

        var title = document.createElement('h2');
        title.style.cssText = 'color:#ff5555;margin:0 0 20px;';
        title.textContent = 'Rebuild Error';

        overlay.appendChild(title);
        overlay.appendChild(pre);
        document.body.appendChild(overlay);
    }

    function clearErrorOverlay() {
        var overlay = document.getElementById('tagtree-error-overlay');
        if (overlay) {
            overlay.remove();
        }
    }

    if (document.readyState === 'loading') {
        document.addEventListener('DOMContentLoaded', connect);
    } else {
        connect();
    }
})();
</script>
`
