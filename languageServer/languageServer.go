package languageServer

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net"
	"os"

	"github.com/corewar/redcode/config"
	"github.com/corewar/redcode/parser"
	"github.com/corewar/redcode/util"
	"github.com/sourcegraph/jsonrpc2"
)

const serverName = "Redcode Language Server"

type stdrwc struct{}

func (stdrwc) Read(p []byte) (int, error) {
	return os.Stdin.Read(p)
}

func (stdrwc) Write(p []byte) (int, error) {
	return os.Stdout.Write(p)
}

func (stdrwc) Close() error {
	if err := os.Stdin.Close(); err != nil {
		return err
	}
	return os.Stdout.Close()
}

// ServeConn starts a language server session on rwc. Every session keeps its
// own set of open documents.
func ServeConn(ctx context.Context, rwc io.ReadWriteCloser, c *config.Config) *jsonrpc2.Conn {
	return jsonrpc2.NewConn(ctx, jsonrpc2.NewBufferedStream(rwc, jsonrpc2.VSCodeObjectCodec{}), NewHandler(c))
}

func ListenAndServe() {
	// using stdin and stdout
	<-ServeConn(context.Background(), stdrwc{}, config.GetConfig()).DisconnectNotify()
}

func ListenAndServeTCP() {
	// tcp mode so the server can be debugged remotely
	addr := config.GetConfig().Address
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatalf("Could not bind to address %s: %v", addr, err)
	}
	defer listener.Close()

	log.Println(serverName+": listening for TCP connections on", addr)

	connectionCount := 0

	for {
		conn, err := listener.Accept()
		if err != nil {
			log.Fatalf("failed to accept incoming connection: %v", err)
		}
		connectionCount = connectionCount + 1
		connectionID := connectionCount
		log.Printf(serverName+": received incoming connection #%d\n", connectionID)

		jsonrpc2Connection := ServeConn(context.Background(), conn, config.GetConfig())
		go func() {
			<-jsonrpc2Connection.DisconnectNotify()
			log.Printf(serverName+": connection #%d closed\n", connectionID)
		}()
	}
}

// handler is only called from its connection's read loop, so the document
// map needs no locking.
type handler struct {
	options   parser.Options
	strict    bool
	documents map[string]TextDocumentItem // map from uri to document
}

func NewHandler(c *config.Config) jsonrpc2.Handler {
	return &handler{
		options:   c.Options(),
		strict:    c.Strict,
		documents: make(map[string]TextDocumentItem),
	}
}

func (h *handler) Handle(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	util.LogF(serverName+": received request: %s", req.Method)
	switch req.Method {
	case "textDocument/didOpen":
		h.documentOpenNotification(ctx, conn, req)
	case "textDocument/didClose":
		h.documentCloseNotification(ctx, conn, req)
	case "textDocument/didChange":
		h.documentChangeNotification(ctx, conn, req)
	case "initialize":
		h.handleInitialize(ctx, conn, req)
	case "initialized":
		// nothing to do, capabilities are registered after initialize
	case "textDocument/diagnostic":
		h.documentDiagnostics(ctx, conn, req)
	case "textDocument/willSaveWaitUntil":
		h.documentWillSaveWaitUntil(ctx, conn, req)
	case "textDocument/hover":
		h.hoverRequest(ctx, conn, req)
	case "redcode/loadFile":
		h.loadFileRequest(ctx, conn, req)

	// quitting
	case "shutdown":
		conn.Reply(ctx, req.ID, nil)
	case "exit":
		conn.Close()

	default:
		if !req.Notif {
			conn.ReplyWithError(ctx, req.ID, &jsonrpc2.Error{
				Code:    jsonrpc2.CodeMethodNotFound,
				Message: "method not supported: " + req.Method,
			})
		}
	}
}

// decodeParams unmarshals the request parameters, replying with an error to
// requests whose parameters are missing or malformed.
func decodeParams(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request, params interface{}) bool {
	var err error
	if req.Params == nil {
		err = io.ErrUnexpectedEOF
	} else {
		err = json.Unmarshal(*req.Params, params)
	}
	if err == nil {
		return true
	}

	util.LogF(serverName+": invalid parameters for %s: %v", req.Method, err)
	if !req.Notif {
		rpcErr := jsonrpc2.Error{Code: jsonrpc2.CodeInvalidParams, Message: "invalid parameters"}
		rpcErr.SetError(err.Error())
		conn.ReplyWithError(ctx, req.ID, &rpcErr)
	}
	return false
}

func (h *handler) handleInitialize(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	decodedParams := InitializeParams{}
	if !decodeParams(ctx, conn, req, &decodedParams) {
		return
	}

	result := InitializeResult{}
	result.Capabilities.TextDocumentSync = 1
	result.Capabilities.HoverProvider = true
	result.Capabilities.DiagnosticProvider = &DiagnosticOptions{}
	result.ServerInfo.Name = serverName
	conn.Reply(ctx, req.ID, result)

	registerRemainingCapabilities(conn)
}

func registerRemainingCapabilities(conn *jsonrpc2.Conn) {
	// textDocumentSync.willSaveWaitUntil is registered dynamically

	util.LogF(serverName + ": registering remaining capabilities")
	params := RegistrationParams{
		Registrations: []Registration{
			{
				ID:     "textDocumentSync.willSaveWaitUntil",
				Method: "textDocument/willSaveWaitUntil",
				RegisterOptions: TextDocumentRegistrationOptions{
					DocumentSelector: []DocumentFilter{
						{
							Scheme:   "file",
							Language: "redcode",
						},
					},
				},
			},
		},
	}

	// the reply arrives on the read loop that is running this handler
	go conn.Call(context.Background(), "client/registerCapability", params, nil)
}
