package playground

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/corewar/redcode/config"
	"github.com/corewar/redcode/parser"
	"github.com/corewar/redcode/util"
	"github.com/gorilla/websocket"
)

type request struct {
	Type     string `json:"type"`
	Source   string `json:"source"`
	Standard string `json:"standard"`
}

type compileResult struct {
	Type        string           `json:"type"`
	LoadFile    string           `json:"loadFile"`
	Start       int              `json:"start"`
	Failed      bool             `json:"failed"`
	Diagnostics []parser.Message `json:"diagnostics"`
	MetaData    parser.MetaData  `json:"metaData"`
}

type errorResult struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// NewHandler serves the playground page on / and the compile socket on /ws.
func NewHandler(c *config.Config) http.Handler {
	var upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     func(r *http.Request) bool { return true },
	}

	socket := func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println(err)
			return
		}
		defer conn.Close()

		// replies are written from this loop only, one per request
		for {
			_, messageBytes, err := conn.ReadMessage()
			if err != nil {
				if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					log.Println("read:", err)
				}
				return
			}

			message := request{}
			if err := json.Unmarshal(messageBytes, &message); err != nil {
				conn.WriteJSON(errorResult{Type: "error", Message: "invalid message: " + err.Error()})
				continue
			}

			switch message.Type {
			case "compile":
				conn.WriteJSON(compile(message, c))
			default:
				util.LogF("playground: unknown message type: %s", message.Type)
				conn.WriteJSON(errorResult{Type: "error", Message: "unknown message type: " + message.Type})
			}
		}
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", socket)
	mux.HandleFunc("/", handleGetPage)
	return mux
}

func compile(message request, c *config.Config) interface{} {
	options := c.Options()
	if message.Standard != "" {
		standard, err := parser.ParseStandard(message.Standard)
		if err != nil {
			return errorResult{Type: "error", Message: err.Error()}
		}
		options.Standard = standard
	}

	result := parser.NewParser().Parse(message.Source, options)
	return compileResult{
		Type:        "result",
		LoadFile:    parser.LoadFileSerialiser{}.SerialiseLoadFile(result.LoadFile()),
		Start:       result.Start,
		Failed:      result.Failed(c.Strict),
		Diagnostics: result.Messages,
		MetaData:    result.MetaData,
	}
}

func ListenAndServe(c *config.Config) error {
	log.Printf("Open the Redcode playground at http://localhost%s\n", c.Address)
	return http.ListenAndServe(c.Address, NewHandler(c))
}

func handleGetPage(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html")
	w.Write([]byte(htmlPage))
}

var htmlPage = `<html>
<head>
	<title>Redcode Playground</title>
</head>
<body style="background-color: #1E1E1E; color: white; font-family: sans-serif;">
	<h1 style="display: inline-block;">Redcode Playground</h1>
	<select id="standard" style="margin-left: 50px; height: 40px;">
		<option value="94">ICWS'94 draft</option>
		<option value="88">ICWS'88</option>
		<option value="86">ICWS'86</option>
	</select>
	<br/>
	<div style="display: flex; gap: 20px;">
		<textarea id="source" spellcheck="false" style="width: 600px; height: 500px; font-family: monospace; font-size: 1.1em; background-color: black; color: white; border: 2px solid white;">;name Imp
;author A. K. Dewdney
imp MOV imp, imp+1</textarea>
		<pre id="loadFile" style="width: 400px; height: 500px; margin: 0; padding: 10px; background-color: black; border: 2px solid white; overflow-y: auto;"></pre>
	</div>
	<h2>Diagnostics</h2>
	<div id="diagnostics" style="font-family: monospace;"></div>

	<script>
		var socket;
		var address = "ws://" + window.location.host + "/ws";

		function compile() {
			if (socket.readyState != WebSocket.OPEN) {
				return;
			}
			socket.send(JSON.stringify({
				type: "compile",
				source: document.getElementById("source").value,
				standard: document.getElementById("standard").value
			}));
		}

		function connect() {
			socket = new WebSocket(address);
			socket.onopen = compile;
			socket.onmessage = function(event) {
				var data = JSON.parse(event.data);
				if (data.type == "result") {
					document.getElementById("loadFile").textContent = data.loadFile;
					var lines = data.diagnostics.map(function(d) {
						var severity = ["", "error", "warning", "info"][d.severity];
						return d.position.line + ":" + d.position.char + " " + severity + ": " + d.text;
					});
					document.getElementById("diagnostics").textContent = lines.join("\n");
					document.getElementById("diagnostics").style.whiteSpace = "pre";
				} else if (data.type == "error") {
					document.getElementById("diagnostics").textContent = data.message;
				}
			};
			// when the socket closes, try to reconnect every 3 seconds
			socket.onclose = function() {
				setTimeout(connect, 3000);
			};
		}

		document.getElementById("source").oninput = compile;
		document.getElementById("standard").onchange = compile;
		connect();
	</script>
</body>
</html>`
