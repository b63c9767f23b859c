package server

import (
	"RangeLiq/internal/ingestion"
	"RangeLiq/internal/observability"
	"RangeLiq/internal/persistence"
	"RangeLiq/internal/projection"
	"RangeLiq/internal/query"
	"context"
	"database/sql"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	googleuuid "github.com/google/uuid"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	adminv1 "RangeLiq/gen/go/rangeliq/admin/v1"
	eventsv1 "RangeLiq/gen/go/rangeliq/events/v1"
	ingestv1 "RangeLiq/gen/go/rangeliq/ingest/v1"
	queryv1 "RangeLiq/gen/go/rangeliq/query/v1"

	"RangeLiq/internal/event"
)

// GRPCServer wraps the gRPC server and gRPC-Gateway HTTP mux.
type GRPCServer struct {
	grpcServer    *grpc.Server
	httpServer    *http.Server
	grpcAddr      string
	httpAddr      string
	healthChecker *observability.HealthChecker
}

// ServerDeps holds all dependencies needed by the gRPC services.
type ServerDeps struct {
	DB              *sql.DB
	QueryService    *query.QueryService
	IngestService   *ingestion.GRPCIngestService
	SnapshotMgr     *persistence.SnapshotManager
	SnapshotTrigger chan<- struct{}
	StartTime       time.Time
	HealthChecker   *observability.HealthChecker
}

// NewGRPCServer creates a new gRPC server with all services registered.
func NewGRPCServer(grpcAddr, httpAddr string, deps *ServerDeps) *GRPCServer {
	grpcServer := grpc.NewServer()

	// Register services
	queryv1.RegisterQueryServiceServer(grpcServer, &queryServiceImpl{qs: deps.QueryService})
	ingestv1.RegisterIngestServiceServer(grpcServer, &ingestServiceImpl{svc: deps.IngestService})
	adminv1.RegisterAdminServiceServer(grpcServer, &adminServiceImpl{
		db:           deps.DB,
		snapMgr:      deps.SnapshotMgr,
		snapTrigger:  deps.SnapshotTrigger,
		queryService: deps.QueryService,
		startTime:    deps.StartTime,
	})

	// Health check
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	// Reflection for grpcurl / grpcui
	reflection.Register(grpcServer)

	return &GRPCServer{
		grpcServer:    grpcServer,
		grpcAddr:      grpcAddr,
		httpAddr:      httpAddr,
		healthChecker: deps.HealthChecker,
	}
}

// StartGRPC starts the gRPC server (blocking).
func (s *GRPCServer) StartGRPC(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.grpcAddr)
	if err != nil {
		return fmt.Errorf("grpc listen: %w", err)
	}

	go func() {
		<-ctx.Done()
		log.Println("INFO: gRPC server shutting down...")
		s.grpcServer.GracefulStop()
	}()

	log.Printf("INFO: gRPC server listening on %s", s.grpcAddr)
	return s.grpcServer.Serve(lis)
}

// StartHTTPGateway starts the gRPC-Gateway HTTP reverse proxy (blocking).
// HTTP/JSON is served via gRPC-Gateway for tooling, dashboards, curl.
func (s *GRPCServer) StartHTTPGateway(ctx context.Context) error {
	mux := runtime.NewServeMux()

	opts := []grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}

	// Register gateway handlers — they proxy HTTP/JSON to the gRPC server
	if err := queryv1.RegisterQueryServiceHandlerFromEndpoint(ctx, mux, s.grpcAddr, opts); err != nil {
		return fmt.Errorf("register query gateway: %w", err)
	}
	if err := ingestv1.RegisterIngestServiceHandlerFromEndpoint(ctx, mux, s.grpcAddr, opts); err != nil {
		return fmt.Errorf("register ingest gateway: %w", err)
	}
	if err := adminv1.RegisterAdminServiceHandlerFromEndpoint(ctx, mux, s.grpcAddr, opts); err != nil {
		return fmt.Errorf("register admin gateway: %w", err)
	}

	httpMux := http.NewServeMux()
	if s.healthChecker != nil {
		httpMux.HandleFunc("/healthz", s.healthChecker.LivenessHandler)
		httpMux.HandleFunc("/readyz", s.healthChecker.ReadinessHandler)
	} else {
		httpMux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			fmt.Fprintf(w, `{"status":"ok"}`)
		})
	}
	httpMux.Handle("/", mux)

	s.httpServer = &http.Server{
		Addr:    s.httpAddr,
		Handler: httpMux,
	}

	go func() {
		<-ctx.Done()
		log.Println("INFO: HTTP gateway shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.httpServer.Shutdown(shutdownCtx)
	}()

	log.Printf("INFO: HTTP gateway listening on %s (proxying to gRPC %s)", s.httpAddr, s.grpcAddr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// ============================================================================
// QueryService gRPC implementation
// ============================================================================

type queryServiceImpl struct {
	queryv1.UnimplementedQueryServiceServer
	qs *query.QueryService
}

func positionToProto(p *query.PositionResponse) *queryv1.Position {
	return &queryv1.Position{
		PositionId:          p.PositionID.String(),
		Owner:               p.Owner,
		Market:              p.Market,
		Direction:           p.Direction,
		InitialCollateral:   p.InitialCollateral,
		RemainingCollateral: p.RemainingCollateral,
		DebtPrincipal:       p.DebtPrincipal,
		RemainingDebt:       p.RemainingDebt,
		TickLower:           p.TickLower,
		TickUpper:           p.TickUpper,
		ThresholdBps:        p.ThresholdBps,
		AccumulatedPenalty:  p.AccumulatedPenalty,
		State:               p.State,
		Version:             p.Version,
		OpenTimestampUs:     p.OpenTimestampUs,
	}
}

func (s *queryServiceImpl) GetPosition(ctx context.Context, req *queryv1.GetPositionRequest) (*queryv1.GetPositionResponse, error) {
	posID, err := requirePositionID(req.PositionId)
	if err != nil {
		return nil, err
	}

	pos, err := s.qs.GetPosition(ctx, posID)
	if err != nil {
		return nil, status.Errorf(codes.NotFound, "position %s: %v", req.PositionId, err)
	}

	return &queryv1.GetPositionResponse{
		Position:     positionToProto(pos),
		AsOfSequence: pos.AsOfSequence,
	}, nil
}

func (s *queryServiceImpl) IsUnderwater(ctx context.Context, req *queryv1.IsUnderwaterRequest) (*queryv1.IsUnderwaterResponse, error) {
	posID, err := requirePositionID(req.PositionId)
	if err != nil {
		return nil, err
	}

	underwater, err := s.qs.IsUnderwater(ctx, posID)
	if err != nil {
		return nil, status.Errorf(codes.NotFound, "position %s: %v", req.PositionId, err)
	}

	return &queryv1.IsUnderwaterResponse{Underwater: underwater}, nil
}

func (s *queryServiceImpl) GetLiquidationProgress(ctx context.Context, req *queryv1.GetLiquidationProgressRequest) (*queryv1.GetLiquidationProgressResponse, error) {
	posID, err := requirePositionID(req.PositionId)
	if err != nil {
		return nil, err
	}

	prog, err := s.qs.GetLiquidationProgress(ctx, posID)
	if err != nil {
		return nil, status.Errorf(codes.NotFound, "position %s: %v", req.PositionId, err)
	}

	return &queryv1.GetLiquidationProgressResponse{
		PositionId:           prog.PositionID.String(),
		ProgressBps:          prog.ProgressBps,
		LiquidatedBps:        prog.LiquidatedBps,
		CollateralLiquidated: prog.CollateralLiquidated,
		CollateralRemaining:  prog.CollateralRemaining,
		DebtRepaid:           prog.DebtRepaid,
		DebtRemaining:        prog.DebtRemaining,
		CurrentTick:          prog.CurrentTick,
		InBand:               prog.InBand,
		AsOfSequence:         prog.AsOfSequence,
	}, nil
}

func (s *queryServiceImpl) GetPenaltyRate(ctx context.Context, req *queryv1.GetPenaltyRateRequest) (*queryv1.GetPenaltyRateResponse, error) {
	rate, err := s.qs.GetPenaltyRateForThreshold(req.ThresholdBps)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "threshold_bps: %v", err)
	}

	return &queryv1.GetPenaltyRateResponse{
		ThresholdBps:   req.ThresholdBps,
		PenaltyRateBps: rate,
	}, nil
}

func (s *queryServiceImpl) GetActivePositionCount(ctx context.Context, req *queryv1.GetActivePositionCountRequest) (*queryv1.GetActivePositionCountResponse, error) {
	count, err := s.qs.GetActivePositionCount(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "count positions: %v", err)
	}

	return &queryv1.GetActivePositionCountResponse{Count: count}, nil
}

func (s *queryServiceImpl) ListLiquidationHistory(ctx context.Context, req *queryv1.ListLiquidationHistoryRequest) (*queryv1.ListLiquidationHistoryResponse, error) {
	pageSize := int(req.PageSize)
	if pageSize <= 0 || pageSize > 500 {
		pageSize = 100
	}

	var posID *googleuuid.UUID
	if req.PositionId != "" {
		id, err := googleuuid.Parse(req.PositionId)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "invalid position_id: %v", err)
		}
		posID = &id
	}

	var beforeSeq *int64
	if req.BeforeSequence > 0 {
		beforeSeq = &req.BeforeSequence
	}

	steps, err := s.qs.GetLiquidationHistory(ctx, posID, pageSize, beforeSeq)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "liquidation history: %v", err)
	}

	var pbSteps []*queryv1.LiquidationStep
	for _, h := range steps {
		pbSteps = append(pbSteps, &queryv1.LiquidationStep{
			Sequence:             h.Sequence,
			PositionId:           h.PositionID.String(),
			Market:               h.Market,
			Tick:                 h.Tick,
			CollateralLiquidated: h.CollateralLiquidated,
			DebtRepaid:           h.DebtRepaid,
			PenaltyToLp:          h.PenaltyToLP,
			PenaltyToTaker:       h.PenaltyToTaker,
			FullyLiquidated:      h.FullyLiquidated,
			TimestampUs:          h.TimestampUs,
		})
	}

	var asOf int64
	if len(steps) > 0 {
		asOf = steps[0].AsOfSequence
	}

	return &queryv1.ListLiquidationHistoryResponse{
		Steps:        pbSteps,
		AsOfSequence: asOf,
	}, nil
}

func (s *queryServiceImpl) GetPoolBalances(ctx context.Context, req *queryv1.GetPoolBalancesRequest) (*queryv1.GetPoolBalancesResponse, error) {
	if req.Asset == "" {
		return nil, status.Error(codes.InvalidArgument, "asset is required")
	}

	pools, err := s.qs.GetPoolBalances(ctx, req.Asset)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "pool balances: %v", err)
	}

	return &queryv1.GetPoolBalancesResponse{
		Asset:          pools.Asset,
		LpPoolCredits:  pools.LPPoolCredits,
		TakerCredits:   pools.TakerCredits,
		PenaltyCharges: pools.PenaltyCharges,
		TotalReserved:  pools.TotalReserved,
		AsOfSequence:   pools.AsOfSequence,
	}, nil
}

func (s *queryServiceImpl) GetPositionReserve(ctx context.Context, req *queryv1.GetPositionReserveRequest) (*queryv1.GetPositionReserveResponse, error) {
	posID, err := requirePositionID(req.PositionId)
	if err != nil {
		return nil, err
	}
	if req.Asset == "" {
		return nil, status.Error(codes.InvalidArgument, "asset is required")
	}

	reserve, err := s.qs.GetPositionReserve(ctx, posID, req.Asset)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "position reserve: %v", err)
	}

	return &queryv1.GetPositionReserveResponse{
		PositionId:   reserve.PositionID.String(),
		Asset:        reserve.Asset,
		Reserve:      reserve.Reserve,
		AsOfSequence: reserve.AsOfSequence,
	}, nil
}

func (s *queryServiceImpl) ListJournals(ctx context.Context, req *queryv1.ListJournalsRequest) (*queryv1.ListJournalsResponse, error) {
	posID, err := requirePositionID(req.PositionId)
	if err != nil {
		return nil, err
	}

	pageSize := int(req.PageSize)
	if pageSize <= 0 || pageSize > 500 {
		pageSize = 100
	}

	var beforeSeq *int64
	if req.BeforeSequence > 0 {
		beforeSeq = &req.BeforeSequence
	}

	entries, err := s.qs.GetJournalHistory(ctx, posID, pageSize, beforeSeq)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get journals: %v", err)
	}

	var journals []*queryv1.JournalRecord
	for _, e := range entries {
		journals = append(journals, &queryv1.JournalRecord{
			JournalId:     e.JournalID,
			BatchId:       e.BatchID,
			EventRef:      e.EventRef,
			EventSequence: e.Sequence,
			DebitAccount:  e.DebitAccount,
			CreditAccount: e.CreditAccount,
			AssetId:       uint32(e.AssetID),
			Amount:        e.Amount,
			JournalType:   e.JournalType,
			TimestampUs:   e.Timestamp,
		})
	}

	return &queryv1.ListJournalsResponse{Journals: journals}, nil
}

// ============================================================================
// IngestService gRPC implementation
// ============================================================================

type ingestServiceImpl struct {
	ingestv1.UnimplementedIngestServiceServer
	svc *ingestion.GRPCIngestService
}

func (s *ingestServiceImpl) SubmitEvent(ctx context.Context, req *ingestv1.SubmitEventRequest) (*ingestv1.SubmitEventResponse, error) {
	if req.Envelope == nil {
		return nil, status.Error(codes.InvalidArgument, "envelope is required")
	}

	// Map protobuf EventType enum to string event type name for the parser
	eventTypeName := protoEventTypeToString(req.Envelope.EventType)
	if eventTypeName == "" {
		return nil, status.Errorf(codes.InvalidArgument, "unknown event_type: %d", req.Envelope.EventType)
	}

	raw := ingestion.RawEvent{
		Subject: eventTypeName,
		Data:    req.Envelope.Payload,
	}

	evt, err := ingestion.ParseRawEvent(raw, eventTypeName)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "parse payload: %v", err)
	}

	// Inject into the event channel (same path as GRPCIngestService)
	select {
	case s.svc.EventChan() <- evt:
		return &ingestv1.SubmitEventResponse{Accepted: true}, nil
	case <-ctx.Done():
		return nil, status.Error(codes.DeadlineExceeded, "context cancelled")
	}
}

func protoEventTypeToString(et eventsv1.EventType) string {
	switch et {
	case eventsv1.EventType_PRICE_UPDATE:
		return "PriceUpdate"
	case eventsv1.EventType_BORROW_REQUEST:
		return "BorrowRequest"
	case eventsv1.EventType_REPAY_REQUEST:
		return "RepayRequest"
	default:
		return ""
	}
}

func (s *ingestServiceImpl) SubmitPriceUpdate(ctx context.Context, req *ingestv1.SubmitPriceUpdateRequest) (*ingestv1.SubmitPriceUpdateResponse, error) {
	if req.Market == "" {
		return nil, status.Error(codes.InvalidArgument, "market is required")
	}
	dir, err := parseProtoDirection(req.Direction)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "direction: %v", err)
	}

	if err := s.svc.InjectPriceUpdate(ctx, req.Market, req.Tick, dir, req.Taker, req.PriceSequence); err != nil {
		return nil, status.Errorf(codes.Unavailable, "inject price: %v", err)
	}

	return &ingestv1.SubmitPriceUpdateResponse{Accepted: true}, nil
}

func (s *ingestServiceImpl) OpenPosition(ctx context.Context, req *ingestv1.OpenPositionRequest) (*ingestv1.OpenPositionResponse, error) {
	if req.Market == "" || req.Owner == "" {
		return nil, status.Error(codes.InvalidArgument, "market and owner are required")
	}
	dir, err := parseProtoDirection(req.Direction)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "direction: %v", err)
	}

	posID, err := s.svc.InjectBorrow(ctx, req.Market, req.Owner, req.Collateral, req.Debt, req.ThresholdBps, dir)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "inject borrow: %v", err)
	}

	return &ingestv1.OpenPositionResponse{
		Accepted:   true,
		PositionId: posID.String(),
	}, nil
}

func (s *ingestServiceImpl) RepayPosition(ctx context.Context, req *ingestv1.RepayPositionRequest) (*ingestv1.RepayPositionResponse, error) {
	if req.Market == "" || req.Caller == "" {
		return nil, status.Error(codes.InvalidArgument, "market and caller are required")
	}
	posID, err := googleuuid.Parse(req.PositionId)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid position_id: %v", err)
	}

	if err := s.svc.InjectRepay(ctx, req.Market, posID, req.Caller); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "inject repay: %v", err)
	}

	return &ingestv1.RepayPositionResponse{Accepted: true}, nil
}

// ============================================================================
// AdminService gRPC implementation
// ============================================================================

type adminServiceImpl struct {
	adminv1.UnimplementedAdminServiceServer
	db           *sql.DB
	snapMgr      *persistence.SnapshotManager
	snapTrigger  chan<- struct{}
	queryService *query.QueryService
	startTime    time.Time
}

func (s *adminServiceImpl) TakeSnapshot(ctx context.Context, req *adminv1.TakeSnapshotRequest) (*adminv1.TakeSnapshotResponse, error) {
	if s.snapTrigger == nil {
		return nil, status.Error(codes.Unavailable, "snapshot trigger not wired")
	}

	select {
	case s.snapTrigger <- struct{}{}:
		return &adminv1.TakeSnapshotResponse{Triggered: true}, nil
	default:
		// A snapshot request is already pending.
		return &adminv1.TakeSnapshotResponse{Triggered: false}, nil
	}
}

func (s *adminServiceImpl) RebuildProjections(ctx context.Context, req *adminv1.RebuildProjectionsRequest) (*adminv1.RebuildProjectionsResponse, error) {
	if err := projection.RebuildProjections(ctx, s.db); err != nil {
		return nil, status.Errorf(codes.Internal, "rebuild failed: %v", err)
	}
	return &adminv1.RebuildProjectionsResponse{
		Started: true,
		TaskId:  "rebuild-sync",
	}, nil
}

func (s *adminServiceImpl) GetEventLogInfo(ctx context.Context, req *adminv1.GetEventLogInfoRequest) (*adminv1.GetEventLogInfoResponse, error) {
	latestSeq, err := s.snapMgr.GetLatestSequence(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get latest sequence: %v", err)
	}

	resp := &adminv1.GetEventLogInfoResponse{
		LastSequence:  latestSeq,
		UptimeSeconds: int64(time.Since(s.startTime).Seconds()),
	}

	if snap, err := s.snapMgr.LoadLatestSnapshot(ctx); err == nil && snap != nil {
		resp.LastSnapshotSequence = snap.Sequence
	}

	return resp, nil
}

func (s *adminServiceImpl) VerifyIntegrity(ctx context.Context, req *adminv1.VerifyIntegrityRequest) (*adminv1.VerifyIntegrityResponse, error) {
	report, err := s.queryService.VerifyIntegrity(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "verify integrity: %v", err)
	}

	resp := &adminv1.VerifyIntegrityResponse{
		Passed: report.IsHealthy,
	}

	if !report.IsHealthy && len(report.HashChainBreaks) > 0 {
		resp.FirstMismatchSequence = report.HashChainBreaks[0]
		resp.ErrorDetail = fmt.Sprintf("%d hash chain breaks, %d unbalanced assets",
			len(report.HashChainBreaks), len(report.UnbalancedAssets))
	}

	return resp, nil
}

// ============================================================================
// Helpers
// ============================================================================

func requirePositionID(s string) (googleuuid.UUID, error) {
	if s == "" {
		return googleuuid.Nil, status.Error(codes.InvalidArgument, "position_id is required")
	}
	id, err := googleuuid.Parse(s)
	if err != nil {
		return googleuuid.Nil, status.Errorf(codes.InvalidArgument, "invalid position_id: %v", err)
	}
	return id, nil
}

func parseProtoDirection(s string) (event.Direction, error) {
	switch s {
	case "base", "":
		return event.DirectionBase, nil
	case "quote":
		return event.DirectionQuote, nil
	default:
		return event.DirectionBase, fmt.Errorf("unknown direction %q", s)
	}
}
