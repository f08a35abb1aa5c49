package agentapplication

import (
	"context"
	"fmt"
	"io"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/ERRORIK404/Keypad_Calculator/pkg/keymap"
	pb "github.com/ERRORIK404/Keypad_Calculator/pkg/proto"
)

// Agent is a remote keypad: it presses keys on a keypad server and prints
// what the display shows.
type Agent struct {
	client pb.KeypadClient
	out    io.Writer
}

func New(conn grpc.ClientConnInterface, out io.Writer) *Agent {
	return &Agent{client: pb.NewKeypadClient(conn), out: out}
}

// Dial opens a plaintext connection to the keypad server.
func Dial(addr string) (*grpc.ClientConn, error) {
	return grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
}

// WithToken attaches a bearer token to every call made with ctx.
func WithToken(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+token)
}

// Run presses every key of script in order. A division-by-zero notice is
// printed and the run goes on; any other failure stops it.
func (a *Agent) Run(ctx context.Context, script string) error {
	events, err := keymap.Parse(script)
	if err != nil {
		return fmt.Errorf("parse %q: %w", script, err)
	}

	for _, ev := range events {
		key := ev.Key()
		res, err := a.client.Press(ctx, wrapperspb.String(key))
		if status.Code(err) == codes.FailedPrecondition {
			fmt.Fprintf(a.out, "%s\t! %s\n", key, status.Convert(err).Message())
			continue
		}
		if err != nil {
			return fmt.Errorf("press %q: %w", key, err)
		}
		d := pb.DisplayFromStruct(res)
		fmt.Fprintf(a.out, "%s\t%s | %s\n", key, d.Preview, d.Current)
	}
	return nil
}

// Replay loads history entry index as the current operand.
func (a *Agent) Replay(ctx context.Context, index int) error {
	res, err := a.client.Replay(ctx, wrapperspb.Int32(int32(index)))
	if err != nil {
		return fmt.Errorf("replay %d: %w", index, err)
	}
	d := pb.DisplayFromStruct(res)
	fmt.Fprintf(a.out, "replay\t%s | %s\n", d.Preview, d.Current)
	return nil
}

func (a *Agent) PrintHistory(ctx context.Context) error {
	res, err := a.client.History(ctx, &emptypb.Empty{})
	if err != nil {
		return fmt.Errorf("history: %w", err)
	}
	items := pb.HistoryFromList(res)
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No calculations yet")
		return nil
	}
	for i, item := range items {
		fmt.Fprintf(a.out, "%d\t%s = %s\t%s\n", i, item.Calculation, item.Result, item.Time)
	}
	return nil
}

func (a *Agent) ClearHistory(ctx context.Context) error {
	if _, err := a.client.ClearHistory(ctx, &emptypb.Empty{}); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}
