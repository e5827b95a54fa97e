package proxyscripts

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// rpcError is the error object of a JSON-RPC response.
type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    string `json:"data,omitempty"`
}

// callResult is the answer of the fake node to an eth_call for one method selector.
type callResult struct {
	output []byte
	err    *rpcError
}

type callArgs struct {
	To         common.Address `json:"to"`
	Input      hexutil.Bytes  `json:"input"`
	Data       hexutil.Bytes  `json:"data"`
	AccessList []struct {
		Address common.Address `json:"address"`
	} `json:"accessList"`
}

func (a callArgs) payload() []byte {
	if len(a.Input) > 0 {
		return a.Input
	}

	return a.Data
}

// fakeNode is a JSON-RPC endpoint serving eth_chainId and eth_call.
type fakeNode struct {
	*httptest.Server

	chainID string
	results map[string]callResult

	mu    sync.Mutex
	calls []callArgs
}

func newFakeNode(t *testing.T, chainID string, results map[string]callResult) *fakeNode {
	t.Helper()

	node := &fakeNode{chainID: chainID, results: results}
	node.Server = httptest.NewServer(http.HandlerFunc(node.serve))
	t.Cleanup(node.Close)

	return node
}

func (n *fakeNode) serve(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID     json.RawMessage   `json:"id"`
		Method string            `json:"method"`
		Params []json.RawMessage `json:"params"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp := map[string]any{"jsonrpc": "2.0", "id": req.ID}
	switch req.Method {
	case "eth_chainId":
		resp["result"] = n.chainID
	case "eth_call":
		var args callArgs
		if len(req.Params) > 0 {
			_ = json.Unmarshal(req.Params[0], &args)
		}
		n.mu.Lock()
		n.calls = append(n.calls, args)
		n.mu.Unlock()

		payload := args.payload()
		if len(payload) < 4 {
			resp["error"] = rpcError{Code: -32602, Message: "missing call data"}
			break
		}

		result, ok := n.results[hexutil.Encode(payload[:4])]
		switch {
		case !ok:
			resp["result"] = "0x"
		case result.err != nil:
			resp["error"] = result.err
		default:
			resp["result"] = hexutil.Encode(result.output)
		}
	default:
		resp["error"] = rpcError{Code: -32601, Message: "the method " + req.Method + " does not exist"}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func (n *fakeNode) Calls() []callArgs {
	n.mu.Lock()
	defer n.mu.Unlock()

	return append([]callArgs(nil), n.calls...)
}

// HostPort returns the endpoint without its scheme, the form the scripts default to.
func (n *fakeNode) HostPort() string {
	return strings.TrimPrefix(n.URL, "http://")
}
