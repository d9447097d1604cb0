// Command tq is a CLI client for the token queue service.
package main

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials"
	grpcinsecure "google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	pb "github.com/and161185/token-queue/gen/go/tokenqueue/v1"
	"github.com/and161185/token-queue/internal/convert"
	"github.com/and161185/token-queue/internal/model"
	"github.com/and161185/token-queue/internal/shopcode"
)

// ---- grpc dial ----

type bearerCreds struct {
	token  string
	secure bool
}

func (b bearerCreds) GetRequestMetadata(context.Context, ...string) (map[string]string, error) {
	return map[string]string{"authorization": "Bearer " + b.token}, nil
}
func (b bearerCreds) RequireTransportSecurity() bool { return b.secure }

type dialOpts struct {
	addr      string
	caPath    string
	insecure  bool // TLS without verification
	plaintext bool // no TLS at all
}

func loadTLS(caPath string, insecure bool) (credentials.TransportCredentials, error) {
	if insecure {
		return credentials.NewTLS(&tls.Config{InsecureSkipVerify: true}), nil
	}
	if caPath == "" {
		return credentials.NewClientTLSFromCert(nil, ""), nil
	}
	pem, err := os.ReadFile(caPath)
	if err != nil {
		return nil, err
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return nil, errors.New("bad CA cert")
	}
	return credentials.NewTLS(&tls.Config{RootCAs: pool}), nil
}

func dial(ctx context.Context, o dialOpts, bearer string) (*grpc.ClientConn, pb.QueueClient, error) {
	creds := grpcinsecure.NewCredentials()
	if !o.plaintext {
		var err error
		if creds, err = loadTLS(o.caPath, o.insecure); err != nil {
			return nil, nil, err
		}
	}
	opts := []grpc.DialOption{grpc.WithTransportCredentials(creds)}
	if bearer != "" {
		opts = append(opts, grpc.WithPerRPCCredentials(bearerCreds{token: bearer, secure: !o.plaintext}))
	}
	//nolint:staticcheck // DialContext is supported through 1.x; migrate when grpc.NewClient is stable
	cc, err := grpc.DialContext(ctx, o.addr, opts...)
	if err != nil {
		return nil, nil, err
	}
	return cc, pb.NewQueueClient(cc), nil
}

// ---- output ----

var jsonOut = protojson.MarshalOptions{Multiline: true, Indent: "  ", EmitUnpopulated: true}

func printJSON(m proto.Message) {
	b, err := jsonOut.Marshal(m)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	fmt.Println(string(b))
}

// describe renders a shop state as one line.
func describe(w io.Writer, s *pb.ShopState, mine int64) {
	st := convert.FromWireStatus(s.GetStatus())
	fmt.Fprintf(w, "%s [%s] %s: serving=%d issued=%d waiting=%d",
		s.GetCode(), st, s.GetName(), s.GetServingNumber(), s.GetIssued(), s.GetWaiting())
	if s.GetDaysRemaining() > 0 {
		fmt.Fprintf(w, " days_left=%d", s.GetDaysRemaining())
	}
	switch st {
	case model.StatusOwnerClosed:
		fmt.Fprint(w, " | not issuing numbers now")
	case model.StatusInactive:
		fmt.Fprint(w, " | outside distribution days")
	}
	if mine > 0 {
		fmt.Fprintf(w, " | your number %d, %s", mine, progress(mine, s.GetServingNumber()))
	}
	fmt.Fprintln(w)
}

func progress(number, serving int64) string {
	switch {
	case number < serving:
		return "expired"
	case number == serving:
		return "called now"
	default:
		return fmt.Sprintf("%d ahead", number-serving)
	}
}

func tokenExpiry(access string) time.Time {
	var claims jwt.RegisteredClaims
	_, _ = jwt.ParseWithClaims(access, &claims, func(*jwt.Token) (any, error) { return nil, nil },
		jwt.WithoutClaimsValidation(),
	)
	if claims.ExpiresAt != nil {
		return claims.ExpiresAt.Time
	}
	return time.Now().Add(15 * time.Minute)
}

func usage() {
	fmt.Fprintf(os.Stderr, `tq CLI
Usage:
  tq -addr HOST:PORT [-cacert file | -insecure | -plaintext] <cmd> [args]

Owner commands:
  register   -u <username> -p <password>
  login      -u <username> -p <password>           (saves token)
  setup      -code <code> -name <display name>
  shop
  open
  close
  next                                          (call the next number)

Customer commands:
  lookup     -code <code>
  take       -code <code>                         (idempotent for this device)
  mine       -code <code>
  watch      -code <code>

  version
`)
	os.Exit(2)
}

// ---- main ----

var (
	version   = "dev"
	buildDate = "unknown"
)

// main dispatches subcommands and configures TLS/auth for RPC calls.
func main() {
	// global flags
	var o dialOpts
	flag.StringVar(&o.addr, "addr", "localhost:8443", "server addr")
	flag.StringVar(&o.caPath, "cacert", "", "CA cert (PEM)")
	flag.BoolVar(&o.insecure, "insecure", false, "skip cert verify (dev)")
	flag.BoolVar(&o.plaintext, "plaintext", false, "no TLS (dev)")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
	}
	cmd, args := flag.Arg(0), flag.Args()[1:]

	if cmd == "version" {
		fmt.Printf("tq %s (%s)\n", version, buildDate)
		return
	}
	if cmd == "watch" {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		if err := cmdWatch(ctx, o, args); err != nil {
			fail(err)
		}
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var err error
	switch cmd {
	case "register":
		err = cmdRegister(ctx, o, args)
	case "login":
		err = cmdLogin(ctx, o, args)
	case "setup":
		err = cmdSetup(ctx, o, args)
	case "shop", "open", "close", "next":
		err = cmdOwner(ctx, o, cmd)
	case "lookup":
		err = cmdLookup(ctx, o, args)
	case "take":
		err = cmdTake(ctx, o, args)
	case "mine":
		err = cmdMine(ctx, o, args)
	default:
		usage()
	}
	if err != nil {
		fail(err)
	}
}

func credFlags(name string, args []string) (string, string, error) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	u := fs.String("u", "", "username")
	p := fs.String("p", "", "password")
	_ = fs.Parse(args)
	if *u == "" || *p == "" {
		return "", "", errors.New("need -u and -p")
	}
	return *u, *p, nil
}

func codeFlag(name string, args []string) (string, error) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	code := fs.String("code", "", "shop code")
	_ = fs.Parse(args)
	if *code == "" && fs.NArg() > 0 {
		*code = fs.Arg(0)
	}
	c := shopcode.Normalize(*code)
	if c == "" {
		return "", errors.New("need -code")
	}
	return c, nil
}

func cmdRegister(ctx context.Context, o dialOpts, args []string) error {
	u, p, err := credFlags("register", args)
	if err != nil {
		return err
	}
	cc, cli, err := dial(ctx, o, "")
	if err != nil {
		return err
	}
	defer cc.Close()

	resp, err := cli.Register(ctx, &pb.RegisterRequest{Username: u, Password: p})
	if err != nil {
		return err
	}
	fmt.Println(resp.GetOwnerId())
	return nil
}

func cmdLogin(ctx context.Context, o dialOpts, args []string) error {
	u, p, err := credFlags("login", args)
	if err != nil {
		return err
	}
	cc, cli, err := dial(ctx, o, "")
	if err != nil {
		return err
	}
	defer cc.Close()

	resp, err := cli.Login(ctx, &pb.LoginRequest{Username: u, Password: p})
	if err != nil {
		return err
	}
	exp := tokenExpiry(resp.GetAccessToken())
	if resp.GetExpiresAt().IsValid() {
		exp = resp.GetExpiresAt().AsTime()
	}
	if err := saveToken(resp.GetAccessToken(), exp); err != nil {
		return err
	}
	fmt.Println("ok")
	return nil
}

func ownerClient(ctx context.Context, o dialOpts) (*grpc.ClientConn, pb.QueueClient, error) {
	token, err := loadToken()
	if err != nil {
		return nil, nil, err
	}
	return dial(ctx, o, token)
}

func cmdSetup(ctx context.Context, o dialOpts, args []string) error {
	fs := flag.NewFlagSet("setup", flag.ExitOnError)
	code := fs.String("code", "", "shop code")
	name := fs.String("name", "", "display name")
	_ = fs.Parse(args)
	if *code == "" || *name == "" {
		return errors.New("need -code and -name")
	}
	cc, cli, err := ownerClient(ctx, o)
	if err != nil {
		return err
	}
	defer cc.Close()

	st, err := cli.SetupShop(ctx, &pb.SetupShopRequest{Code: *code, Name: *name})
	if err != nil {
		return err
	}
	printJSON(st)
	return nil
}

func cmdOwner(ctx context.Context, o dialOpts, cmd string) error {
	cc, cli, err := ownerClient(ctx, o)
	if err != nil {
		return err
	}
	defer cc.Close()

	var st *pb.ShopState
	switch cmd {
	case "shop":
		st, err = cli.MyShop(ctx, &pb.MyShopRequest{})
	case "open":
		st, err = cli.SetOpen(ctx, &pb.SetOpenRequest{Open: true})
	case "close":
		st, err = cli.SetOpen(ctx, &pb.SetOpenRequest{Open: false})
	case "next":
		st, err = cli.AdvanceServing(ctx, &pb.AdvanceServingRequest{})
	}
	if err != nil {
		return err
	}
	describe(os.Stdout, st, 0)
	return nil
}

func cmdLookup(ctx context.Context, o dialOpts, args []string) error {
	code, err := codeFlag("lookup", args)
	if err != nil {
		return err
	}
	cc, cli, err := dial(ctx, o, "")
	if err != nil {
		return err
	}
	defer cc.Close()

	st, err := cli.LookupShop(ctx, &pb.LookupShopRequest{Code: code})
	if err != nil {
		return err
	}
	mine, _ := cached(code, st.GetDate())
	describe(os.Stdout, st, mine)
	return nil
}

func cmdTake(ctx context.Context, o dialOpts, args []string) error {
	code, err := codeFlag("take", args)
	if err != nil {
		return err
	}
	sid, err := sessionID()
	if err != nil {
		return err
	}
	cc, cli, err := dial(ctx, o, "")
	if err != nil {
		return err
	}
	defer cc.Close()

	st, err := cli.LookupShop(ctx, &pb.LookupShopRequest{Code: code})
	if err != nil {
		return err
	}
	res, err := cli.IssueToken(ctx, &pb.IssueTokenRequest{Code: code, SessionId: sid})
	if err != nil {
		return err
	}
	if err := remember(code, st.GetDate(), res.GetNumber()); err != nil {
		return err
	}
	if res.AlreadyIssued {
		fmt.Printf("you already hold number %d at %s (serving %d)\n", res.Number, code, res.Serving)
		return nil
	}
	fmt.Printf("your number at %s is %d (serving %d)\n", code, res.Number, res.Serving)
	return nil
}

func cmdMine(ctx context.Context, o dialOpts, args []string) error {
	code, err := codeFlag("mine", args)
	if err != nil {
		return err
	}
	sid, err := sessionID()
	if err != nil {
		return err
	}
	cc, cli, err := dial(ctx, o, "")
	if err != nil {
		return err
	}
	defer cc.Close()

	st, err := cli.LookupShop(ctx, &pb.LookupShopRequest{Code: code})
	if err != nil {
		return err
	}
	ts, err := cli.MyToken(ctx, &pb.MyTokenRequest{Code: code, SessionId: sid})
	if status.Code(err) == codes.NotFound {
		_ = forget(code)
		fmt.Printf("no number at %s today\n", code)
		return nil
	}
	if err != nil {
		return err
	}
	if err := remember(code, st.GetDate(), ts.GetNumber()); err != nil {
		return err
	}
	printJSON(ts)
	return nil
}

func cmdWatch(ctx context.Context, o dialOpts, args []string) error {
	code, err := codeFlag("watch", args)
	if err != nil {
		return err
	}
	cc, cli, err := dial(ctx, o, "")
	if err != nil {
		return err
	}
	defer cc.Close()

	stream, err := cli.Watch(ctx, &pb.WatchRequest{Code: code})
	if err != nil {
		return err
	}
	for {
		st, err := stream.Recv()
		if errors.Is(err, io.EOF) || ctx.Err() != nil {
			return nil
		}
		if err != nil {
			return err
		}
		mine, _ := cached(code, st.GetDate())
		describe(os.Stdout, st, mine)
	}
}

// ---- helpers ----

func fail(err error) {
	if s, ok := status.FromError(err); ok {
		fmt.Fprintf(os.Stderr, "rpc error: code=%s msg=%s\n", s.Code(), s.Message())
		os.Exit(1)
	}
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
