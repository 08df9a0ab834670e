package api

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"courier/internal/group"
	"courier/internal/history"
	"courier/pkg/jwt"
)

type UserService interface {
	Register(ctx context.Context, username, password string) (int64, error)
	Authenticate(ctx context.Context, username, password string) (int64, error)
}

type GroupService interface {
	Create(ctx context.Context, name string, adminID int64) (int64, error)
	AddMember(ctx context.Context, groupID, userID int64) error
	RemoveMember(ctx context.Context, groupID, userID int64) error
	Members(ctx context.Context, groupID int64) ([]group.Member, error)
	Groups(ctx context.Context) ([]group.Group, error)
}

type MessageService interface {
	SendDirect(ctx context.Context, senderID, receiverID int64, content string) (int64, error)
	SendToGroup(ctx context.Context, senderID, groupID int64, content string) ([]int64, error)
}

type HistoryService interface {
	MessagesFor(ctx context.Context, userID int64) ([]history.Entry, error)
	MessagesIn(ctx context.Context, groupID int64) ([]history.Entry, error)
}

// Server maps HTTP requests onto the core services and owns the
// error-to-status translation. It holds no state of its own.
type Server struct {
	router   *mux.Router
	users    UserService
	groups   GroupService
	messages MessageService
	history  HistoryService
	tokens   *jwt.JWT
}

func NewServer(users UserService, groups GroupService, messages MessageService, history HistoryService, tokens *jwt.JWT) *Server {
	s := &Server{
		router:   mux.NewRouter(),
		users:    users,
		groups:   groups,
		messages: messages,
		history:  history,
		tokens:   tokens,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(RequestID, Logger)

	s.router.HandleFunc("/register", s.register).Methods("POST")
	s.router.HandleFunc("/login", s.login).Methods("POST")

	authed := s.router.NewRoute().Subrouter()
	authed.Use(s.requireAuth)

	authed.HandleFunc("/groups", s.createGroup).Methods("POST")
	authed.HandleFunc("/groups", s.listGroups).Methods("GET")
	authed.HandleFunc("/groups/{group_id}/users", s.addMember).Methods("POST")
	authed.HandleFunc("/groups/{group_id}/users", s.listMembers).Methods("GET")
	authed.HandleFunc("/groups/{group_id}/users/{user_id}", s.removeMember).Methods("DELETE")
	authed.HandleFunc("/groups/{group_id}/messages", s.sendGroupMessage).Methods("POST")
	authed.HandleFunc("/groups/{group_id}/messages", s.groupMessages).Methods("GET")
	authed.HandleFunc("/users/{user_id}/messages", s.sendDirectMessage).Methods("POST")
	authed.HandleFunc("/users/{user_id}/messages", s.userMessages).Methods("GET")
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) Run(addr string) error {
	server := &http.Server{
		Addr:    addr,
		Handler: s.router,
	}
	return server.ListenAndServe()
}
