package handlers

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	"communityhub/pkg/session"
	"communityhub/pkg/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/argon2"
)

type UserHandler struct {
	Sm     session.SessionManager
	Repo   UsersRepo
	Logger *zap.SugaredLogger
}

type UsersRepo interface {
	GetByID(id int64) (*user.User, error)
	GetByUsername(username string) (*user.User, error)
	Add(user *user.User) (int64, error)
}

type AuthReq struct {
	Password *string `json:"password"`
	Username *string `json:"username"`
}

type AuthResponse struct {
	Token string `json:"token"`
}

func (r *AuthReq) validate() []*CustomError {
	usr := &Validator{value: r.Username, location: "body", field: "username"}
	usrErr := func() *CustomError {
		err := usr.Required()
		if err != nil {
			return err
		}
		err = usr.Empty()
		if err != nil {
			return err
		}
		err = usr.MaxLength(32)
		if err != nil {
			return err
		}
		err = usr.Custom(func(value string) bool {
			return strings.TrimSpace(value) == value
		}, "cannot start or end with whitespace")
		if err != nil {
			return err
		}

		return usr.Matches("^[a-zA-Z0-9_-]+$")
	}()

	pwd := &Validator{value: r.Password, location: "body", field: "password"}
	pwdErr := func() *CustomError {
		err := pwd.Required()
		if err != nil {
			return err
		}
		err = pwd.Empty()
		if err != nil {
			return err
		}
		return pwd.MinLength(8)
	}()

	return mergeErrors(usrErr, pwdErr)
}

func (u *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	req, ok := u.readAuthReq(w, r)
	if !ok {
		return
	}

	existing, err := u.Repo.GetByUsername(*req.Username)
	if err != nil {
		u.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if existing != nil {
		WriteResponse(w, "username already taken", http.StatusConflict)
		return
	}

	salt := make([]byte, 8)
	_, err = rand.Read(salt)
	if err != nil {
		u.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	newUser := &user.User{
		Username: *req.Username,
		Password: HashPass(salt, *req.Password),
	}

	id, err := u.Repo.Add(newUser)
	if err != nil {
		u.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	newUser.ID = id

	u.writeAuthResponse(w, newUser, http.StatusCreated)
}

func (u *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	req, ok := u.readAuthReq(w, r)
	if !ok {
		return
	}

	dbUser, err := u.Repo.GetByUsername(*req.Username)
	if err != nil {
		u.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if dbUser == nil || !checkPass(dbUser.Password, *req.Password) {
		WriteResponse(w, "invalid username or password", http.StatusUnauthorized)
		return
	}

	u.writeAuthResponse(w, dbUser, http.StatusOK)
}

func (u *UserHandler) readAuthReq(w http.ResponseWriter, r *http.Request) (*AuthReq, bool) {
	body, err := ioutil.ReadAll(r.Body)
	if err != nil {
		WriteResponse(w, "bad request", http.StatusBadRequest)
		return nil, false
	}

	var req AuthReq
	err = json.Unmarshal(body, &req)
	if err != nil {
		WriteResponse(w, "bad request", http.StatusBadRequest)
		return nil, false
	}

	validationErrors := req.validate()
	if len(validationErrors) > 0 {
		writeErrorsResponse(w, validationErrors, http.StatusUnprocessableEntity)
		return nil, false
	}

	return &req, true
}

func HashPass(salt []byte, plainPassword string) []byte {
	hashedPass := argon2.IDKey([]byte(plainPassword), salt, 1, 64*1024, 4, 32)
	return append(salt, hashedPass...)
}

func checkPass(passHash []byte, plainPassword string) bool {
	if len(passHash) < 8 {
		return false
	}

	salt := make([]byte, 8)
	copy(salt, passHash[0:8])
	return bytes.Equal(HashPass(salt, plainPassword), passHash)
}

func (u *UserHandler) writeAuthResponse(w http.ResponseWriter, usr *user.User, status int) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	sessID := uuid.New().String()
	expiresAt := time.Now().Add(2 * time.Hour).Unix()

	token, err := u.Sm.Create(ctx, w, &session.User{ID: usr.ID, Username: usr.Username}, sessID, expiresAt)
	if err != nil {
		u.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	WriteJSON(w, &AuthResponse{Token: token}, status)
}
