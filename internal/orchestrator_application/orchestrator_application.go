package orchestrator_application

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	calc "github.com/ERRORIK404/Keypad_Calculator/internal/calculator_application"
	engine "github.com/ERRORIK404/Keypad_Calculator/pkg/expression_engine"
	"github.com/ERRORIK404/Keypad_Calculator/pkg/history"
	"github.com/ERRORIK404/Keypad_Calculator/pkg/keymap"
	locerr "github.com/ERRORIK404/Keypad_Calculator/pkg/local_errors"
	pb "github.com/ERRORIK404/Keypad_Calculator/pkg/proto"
	structs "github.com/ERRORIK404/Keypad_Calculator/pkg/structs"
)

type Options struct {
	Blobs        history.BlobStore
	HistoryKey   string
	HistoryLimit int
	// Пустой секрет: все клиенты работают с одной общей сессией
	JWTSecret string
	Log       *zap.Logger
}

// Server holds one calculator session per login and serves them over gRPC
// and HTTP.
type Server struct {
	pb.UnimplementedKeypadServer

	sessions *structs.SafeSessionMap[*calc.Calculator]
	opts     Options
	log      *zap.Logger
}

func NewServer(opts Options) *Server {
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}
	if opts.HistoryKey == "" {
		opts.HistoryKey = history.DefaultKey
	}
	if opts.HistoryLimit < 1 {
		opts.HistoryLimit = history.DefaultLimit
	}
	return &Server{
		sessions: structs.NewSafeSessionMap[*calc.Calculator](),
		opts:     opts,
		log:      opts.Log,
	}
}

// HistoryKey is the blob key holding login's history.
func (s *Server) HistoryKey(login string) string {
	if login == "" {
		return s.opts.HistoryKey
	}
	return s.opts.HistoryKey + ":" + login
}

// Session returns the calculator for login, opening it on first use.
func (s *Server) Session(login string) *calc.Calculator {
	return s.sessions.GetOrCreate(login, func() *calc.Calculator {
		key := s.HistoryKey(login)
		s.log.Info("session opened", zap.String("login", login), zap.String("key", key))
		return calc.Open(s.opts.Blobs, key, s.opts.HistoryLimit, s.log.With(zap.String("login", login)))
	})
}

func (s *Server) Press(ctx context.Context, in *wrapperspb.StringValue) (*structpb.Struct, error) {
	c := s.Session(loginFromContext(ctx))
	ev, err := keymap.FromKey(in.GetValue())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%v: %q", err, in.GetValue())
	}
	d, err := c.Dispatch(ev)
	if err != nil {
		return nil, toStatus(err)
	}
	return pb.DisplayToStruct(newDisplay(d, nil))
}

func (s *Server) Replay(ctx context.Context, in *wrapperspb.Int32Value) (*structpb.Struct, error) {
	c := s.Session(loginFromContext(ctx))
	d, err := c.Replay(int(in.GetValue()))
	if err != nil {
		return nil, toStatus(err)
	}
	return pb.DisplayToStruct(newDisplay(d, nil))
}

func (s *Server) History(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	c := s.Session(loginFromContext(ctx))
	return pb.HistoryToList(structs.NewHistoryItems(c.History()))
}

func (s *Server) ClearHistory(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	c := s.Session(loginFromContext(ctx))
	if err := c.ClearHistory(); err != nil {
		return nil, toStatus(err)
	}
	return &emptypb.Empty{}, nil
}

func newDisplay(d engine.Display, notice error) structs.Display {
	out := structs.Display{Preview: d.Preview, Current: d.Current}
	if notice != nil {
		out.Notice = notice.Error()
	}
	return out
}

func toStatus(err error) error {
	switch {
	case calc.IsNotice(err):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, locerr.ErrUnknownKey),
		errors.Is(err, locerr.ErrUnknownOperation),
		errors.Is(err, locerr.ErrInvalidCharacter):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, locerr.ErrHistoryEntryNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, locerr.ErrInvalidToken):
		return status.Error(codes.Unauthenticated, err.Error())
	default:
		return status.Errorf(codes.Internal, "operation failed: %v", err)
	}
}
