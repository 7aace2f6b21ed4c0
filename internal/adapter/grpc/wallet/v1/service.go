package walletv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	WalletService_Login_FullMethodName         = "/wallet.v1.WalletService/Login"
	WalletService_GetBalance_FullMethodName    = "/wallet.v1.WalletService/GetBalance"
	WalletService_Deposit_FullMethodName       = "/wallet.v1.WalletService/Deposit"
	WalletService_Transfer_FullMethodName      = "/wallet.v1.WalletService/Transfer"
	WalletService_ListMovements_FullMethodName = "/wallet.v1.WalletService/ListMovements"
	WalletService_ListContacts_FullMethodName  = "/wallet.v1.WalletService/ListContacts"
	WalletService_AddContact_FullMethodName    = "/wallet.v1.WalletService/AddContact"
	WalletService_RemoveContact_FullMethodName = "/wallet.v1.WalletService/RemoveContact"
)

// WalletServiceClient is the client API for WalletService
type WalletServiceClient interface {
	Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error)
	GetBalance(ctx context.Context, in *GetBalanceRequest, opts ...grpc.CallOption) (*GetBalanceResponse, error)
	Deposit(ctx context.Context, in *DepositRequest, opts ...grpc.CallOption) (*DepositResponse, error)
	Transfer(ctx context.Context, in *TransferRequest, opts ...grpc.CallOption) (*TransferResponse, error)
	ListMovements(ctx context.Context, in *ListMovementsRequest, opts ...grpc.CallOption) (*ListMovementsResponse, error)
	ListContacts(ctx context.Context, in *ListContactsRequest, opts ...grpc.CallOption) (*ListContactsResponse, error)
	AddContact(ctx context.Context, in *AddContactRequest, opts ...grpc.CallOption) (*AddContactResponse, error)
	RemoveContact(ctx context.Context, in *RemoveContactRequest, opts ...grpc.CallOption) (*RemoveContactResponse, error)
}

type walletServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewWalletServiceClient wraps cc. Every call is sent with the json content subtype.
func NewWalletServiceClient(cc grpc.ClientConnInterface) WalletServiceClient {
	return &walletServiceClient{cc}
}

func (c *walletServiceClient) invoke(ctx context.Context, method string, in, out any, opts []grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	return c.cc.Invoke(ctx, method, in, out, opts...)
}

func (c *walletServiceClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	out := new(LoginResponse)
	if err := c.invoke(ctx, WalletService_Login_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *walletServiceClient) GetBalance(ctx context.Context, in *GetBalanceRequest, opts ...grpc.CallOption) (*GetBalanceResponse, error) {
	out := new(GetBalanceResponse)
	if err := c.invoke(ctx, WalletService_GetBalance_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *walletServiceClient) Deposit(ctx context.Context, in *DepositRequest, opts ...grpc.CallOption) (*DepositResponse, error) {
	out := new(DepositResponse)
	if err := c.invoke(ctx, WalletService_Deposit_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *walletServiceClient) Transfer(ctx context.Context, in *TransferRequest, opts ...grpc.CallOption) (*TransferResponse, error) {
	out := new(TransferResponse)
	if err := c.invoke(ctx, WalletService_Transfer_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *walletServiceClient) ListMovements(ctx context.Context, in *ListMovementsRequest, opts ...grpc.CallOption) (*ListMovementsResponse, error) {
	out := new(ListMovementsResponse)
	if err := c.invoke(ctx, WalletService_ListMovements_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *walletServiceClient) ListContacts(ctx context.Context, in *ListContactsRequest, opts ...grpc.CallOption) (*ListContactsResponse, error) {
	out := new(ListContactsResponse)
	if err := c.invoke(ctx, WalletService_ListContacts_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *walletServiceClient) AddContact(ctx context.Context, in *AddContactRequest, opts ...grpc.CallOption) (*AddContactResponse, error) {
	out := new(AddContactResponse)
	if err := c.invoke(ctx, WalletService_AddContact_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *walletServiceClient) RemoveContact(ctx context.Context, in *RemoveContactRequest, opts ...grpc.CallOption) (*RemoveContactResponse, error) {
	out := new(RemoveContactResponse)
	if err := c.invoke(ctx, WalletService_RemoveContact_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

// WalletServiceServer is the server API for WalletService.
// Implementations must embed UnimplementedWalletServiceServer.
type WalletServiceServer interface {
	Login(context.Context, *LoginRequest) (*LoginResponse, error)
	GetBalance(context.Context, *GetBalanceRequest) (*GetBalanceResponse, error)
	Deposit(context.Context, *DepositRequest) (*DepositResponse, error)
	Transfer(context.Context, *TransferRequest) (*TransferResponse, error)
	ListMovements(context.Context, *ListMovementsRequest) (*ListMovementsResponse, error)
	ListContacts(context.Context, *ListContactsRequest) (*ListContactsResponse, error)
	AddContact(context.Context, *AddContactRequest) (*AddContactResponse, error)
	RemoveContact(context.Context, *RemoveContactRequest) (*RemoveContactResponse, error)
	mustEmbedUnimplementedWalletServiceServer()
}

// UnimplementedWalletServiceServer answers every method with codes.Unimplemented
type UnimplementedWalletServiceServer struct{}

func (UnimplementedWalletServiceServer) Login(context.Context, *LoginRequest) (*LoginResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Login not implemented")
}
func (UnimplementedWalletServiceServer) GetBalance(context.Context, *GetBalanceRequest) (*GetBalanceResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetBalance not implemented")
}
func (UnimplementedWalletServiceServer) Deposit(context.Context, *DepositRequest) (*DepositResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Deposit not implemented")
}
func (UnimplementedWalletServiceServer) Transfer(context.Context, *TransferRequest) (*TransferResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Transfer not implemented")
}
func (UnimplementedWalletServiceServer) ListMovements(context.Context, *ListMovementsRequest) (*ListMovementsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListMovements not implemented")
}
func (UnimplementedWalletServiceServer) ListContacts(context.Context, *ListContactsRequest) (*ListContactsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListContacts not implemented")
}
func (UnimplementedWalletServiceServer) AddContact(context.Context, *AddContactRequest) (*AddContactResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AddContact not implemented")
}
func (UnimplementedWalletServiceServer) RemoveContact(context.Context, *RemoveContactRequest) (*RemoveContactResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RemoveContact not implemented")
}
func (UnimplementedWalletServiceServer) mustEmbedUnimplementedWalletServiceServer() {}

// RegisterWalletServiceServer registers srv on s
func RegisterWalletServiceServer(s grpc.ServiceRegistrar, srv WalletServiceServer) {
	s.RegisterService(&WalletService_ServiceDesc, srv)
}

// unaryHandler adapts a typed method to grpc.MethodDesc.Handler
func unaryHandler[Req any, Resp any](fullMethod string, call func(WalletServiceServer, context.Context, *Req) (*Resp, error)) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(WalletServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(WalletServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// WalletService_ServiceDesc is the grpc.ServiceDesc for WalletService
var WalletService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "wallet.v1.WalletService",
	HandlerType: (*WalletServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Login",
			Handler:    unaryHandler(WalletService_Login_FullMethodName, WalletServiceServer.Login),
		},
		{
			MethodName: "GetBalance",
			Handler:    unaryHandler(WalletService_GetBalance_FullMethodName, WalletServiceServer.GetBalance),
		},
		{
			MethodName: "Deposit",
			Handler:    unaryHandler(WalletService_Deposit_FullMethodName, WalletServiceServer.Deposit),
		},
		{
			MethodName: "Transfer",
			Handler:    unaryHandler(WalletService_Transfer_FullMethodName, WalletServiceServer.Transfer),
		},
		{
			MethodName: "ListMovements",
			Handler:    unaryHandler(WalletService_ListMovements_FullMethodName, WalletServiceServer.ListMovements),
		},
		{
			MethodName: "ListContacts",
			Handler:    unaryHandler(WalletService_ListContacts_FullMethodName, WalletServiceServer.ListContacts),
		},
		{
			MethodName: "AddContact",
			Handler:    unaryHandler(WalletService_AddContact_FullMethodName, WalletServiceServer.AddContact),
		},
		{
			MethodName: "RemoveContact",
			Handler:    unaryHandler(WalletService_RemoveContact_FullMethodName, WalletServiceServer.RemoveContact),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "wallet/v1/wallet.proto",
}
