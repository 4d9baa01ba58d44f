// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"jobboard_backend/internal/feature/auth/domain/entity"
)

const (
	// minPasswordLength はパスワードの最低文字数を定義します。
	minPasswordLength = 8
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化します。
	// 同じメールアドレスのユーザーが既に存在する場合、ErrEmailAlreadyExistsを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail は指定されたメールアドレスに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID は指定されたIDに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// TokenGenerator はベアラートークン発行のインターフェースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（platform/token）ではなくコンシューマー（usecase）が定義します。
type TokenGenerator interface {
	// GenerateToken は指定されたユーザーの署名済みトークンを生成します。
	GenerateToken(userID uint) (string, error)
}

// SignupInput はユーザー登録の入力値です。
// パスワード以外のプロフィール項目は検証せずそのまま保存します。
type SignupInput struct {
	Name             string
	Email            string
	Password         string
	PhoneNumber      string
	Gender           string
	DateOfBirth      string
	MembershipStatus string
}

// authUsecase は認証ビジネスロジックを実装します。
type authUsecase struct {
	users     UserRepository
	generator TokenGenerator
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(users UserRepository, generator TokenGenerator) *authUsecase {
	return &authUsecase{
		users:     users,
		generator: generator,
	}
}

// validatePassword はパスワードがセキュリティ要件を満たしているかチェックします。
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}
	return nil
}

// Signup はハッシュ化されたパスワードで新規ユーザーを登録し、トークンを発行します。
// メールアドレスの重複は保存前に明示的にチェックします。チェックと保存の間には
// わずかな競合ウィンドウが残りますが、ストレージ側のユニークインデックスが
// 同一のErrEmailAlreadyExistsとして吸収します。
func (u *authUsecase) Signup(ctx context.Context, in SignupInput) (string, error) {
	// パスワード強度を検証
	if err := validatePassword(in.Password); err != nil {
		return "", err
	}

	// メールアドレスの重複を事前チェック
	if _, err := u.users.FindByEmail(ctx, in.Email); err == nil {
		return "", ErrEmailAlreadyExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return "", fmt.Errorf("failed to check existing user: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Name:             in.Name,
		Email:            in.Email,
		Password:         string(hashed),
		PhoneNumber:      in.PhoneNumber,
		Gender:           in.Gender,
		DateOfBirth:      in.DateOfBirth,
		MembershipStatus: in.MembershipStatus,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return "", err
	}

	token, err := u.generator.GenerateToken(user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	return token, nil
}

// Login はユーザーを認証し、成功時に新しいトークンを返します。
// メールアドレス未登録とパスワード不一致は同一のErrInvalidCredentialsとして返し、
// どちらが原因かを応答から判別できないようにします。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
func (u *authUsecase) Login(ctx context.Context, email, password string) (string, error) {
	// メールアドレスでユーザーを検索
	user, err := u.users.FindByEmail(ctx, email)

	// ユーザーが存在しない場合のタイミング攻撃緩和用ダミーハッシュ
	// bcrypt.CompareHashAndPasswordが常に呼ばれることを保証する
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy" // ダミーハッシュ
	if err == nil {
		passwordHash = user.Password
	}

	// タイミング攻撃防止のため、常にパスワードを検証
	// 第1引数はハッシュ化パスワード、第2引数は平文パスワード
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	// ユーザー未検出またはパスワード不一致の場合、汎用エラーを返す
	if err != nil || compareErr != nil {
		return "", ErrInvalidCredentials
	}

	// ログインごとに新しい有効期限のトークンを発行
	token, tokenErr := u.generator.GenerateToken(user.ID)
	if tokenErr != nil {
		return "", fmt.Errorf("failed to generate token: %w", tokenErr)
	}

	return token, nil
}
