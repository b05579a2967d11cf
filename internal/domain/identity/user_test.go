package identity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("creates user with valid username and password", func(t *testing.T) {
		user, err := NewUser("testuser", "Password123", RoleCustomer)

		require.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, "testuser", user.Username)
		assert.NotEmpty(t, user.PasswordHash)
		assert.Equal(t, RoleCustomer, user.Role)
		assert.Equal(t, UserStatusActive, user.Status)
		assert.NotNil(t, user.PasswordChangedAt)

		// Should have domain event
		events := user.GetDomainEvents()
		assert.Len(t, events, 1)
		_, ok := events[0].(*UserCreatedEvent)
		assert.True(t, ok)
	})

	t.Run("normalizes username to lowercase", func(t *testing.T) {
		user, err := NewUser("TestUser", "Password123", RoleCustomer)

		require.NoError(t, err)
		assert.Equal(t, "testuser", user.Username)
	})

	t.Run("trims username whitespace", func(t *testing.T) {
		user, err := NewUser("  testuser  ", "Password123", RoleCustomer)

		require.NoError(t, err)
		assert.Equal(t, "testuser", user.Username)
	})

	t.Run("fails with empty username", func(t *testing.T) {
		_, err := NewUser("", "Password123", RoleCustomer)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "cannot be empty")
	})

	t.Run("fails with short username", func(t *testing.T) {
		_, err := NewUser("ab", "Password123", RoleCustomer)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "at least 3 characters")
	})

	t.Run("fails with invalid username characters", func(t *testing.T) {
		_, err := NewUser("test@user", "Password123", RoleCustomer)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "only contain letters")
	})

	t.Run("fails with short password", func(t *testing.T) {
		_, err := NewUser("testuser", "Pass1", RoleCustomer)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "at least 8 characters")
	})

	t.Run("fails with password missing a number", func(t *testing.T) {
		_, err := NewUser("testuser", "PasswordOnly", RoleCustomer)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "at least one letter and one number")
	})

	t.Run("fails with unknown role", func(t *testing.T) {
		_, err := NewUser("testuser", "Password123", Role("admin"))

		assert.Error(t, err)
	})
}

func TestRole(t *testing.T) {
	t.Run("validates known roles", func(t *testing.T) {
		assert.True(t, RoleCustomer.IsValid())
		assert.True(t, RoleStoreManager.IsValid())
		assert.True(t, RoleMainManager.IsValid())
		assert.False(t, Role("superuser").IsValid())
	})

	t.Run("staff check", func(t *testing.T) {
		assert.False(t, RoleCustomer.IsStaff())
		assert.True(t, RoleStoreManager.IsStaff())
		assert.True(t, RoleMainManager.IsStaff())
	})

	t.Run("permission scopes", func(t *testing.T) {
		assert.False(t, RoleCustomer.CanManageStore())
		assert.True(t, RoleStoreManager.CanManageStore())
		assert.True(t, RoleMainManager.CanManageStore())

		assert.False(t, RoleStoreManager.CanManageCompany())
		assert.True(t, RoleMainManager.CanManageCompany())
	})
}

func TestUserLinks(t *testing.T) {
	t.Run("links customer profile to customer account", func(t *testing.T) {
		user, err := NewUser("buyer", "Password123", RoleCustomer)
		require.NoError(t, err)

		customerID := uuid.New()
		require.NoError(t, user.LinkCustomer(customerID))
		require.NotNil(t, user.CustomerID)
		assert.Equal(t, customerID, *user.CustomerID)
	})

	t.Run("rejects customer link on staff account", func(t *testing.T) {
		user, err := NewUser("manager", "Password123", RoleMainManager)
		require.NoError(t, err)

		err = user.LinkCustomer(uuid.New())
		assert.Error(t, err)
	})

	t.Run("assigns store to store manager", func(t *testing.T) {
		user, err := NewUser("storemgr", "Password123", RoleStoreManager)
		require.NoError(t, err)

		storeID := uuid.New()
		require.NoError(t, user.AssignStore(storeID))
		require.NotNil(t, user.StoreID)
		assert.Equal(t, storeID, *user.StoreID)
	})

	t.Run("rejects store assignment on customer account", func(t *testing.T) {
		user, err := NewUser("buyer", "Password123", RoleCustomer)
		require.NoError(t, err)

		err = user.AssignStore(uuid.New())
		assert.Error(t, err)
	})
}

func TestUserPassword(t *testing.T) {
	t.Run("verifies correct password", func(t *testing.T) {
		user, err := NewUser("testuser", "Password123", RoleCustomer)
		require.NoError(t, err)

		assert.True(t, user.VerifyPassword("Password123"))
		assert.False(t, user.VerifyPassword("WrongPassword1"))
	})

	t.Run("changes password with correct old password", func(t *testing.T) {
		user, err := NewUser("testuser", "Password123", RoleCustomer)
		require.NoError(t, err)

		err = user.ChangePassword("Password123", "NewPassword456")
		require.NoError(t, err)
		assert.True(t, user.VerifyPassword("NewPassword456"))
		assert.False(t, user.VerifyPassword("Password123"))
	})

	t.Run("rejects change with wrong old password", func(t *testing.T) {
		user, err := NewUser("testuser", "Password123", RoleCustomer)
		require.NoError(t, err)

		err = user.ChangePassword("WrongOld1", "NewPassword456")
		assert.Error(t, err)
		assert.True(t, user.VerifyPassword("Password123"))
	})

	t.Run("admin reset clears must-change flag", func(t *testing.T) {
		user, err := NewUser("testuser", "Password123", RoleCustomer)
		require.NoError(t, err)

		user.ForcePasswordChange()
		assert.True(t, user.MustChangePassword)

		require.NoError(t, user.SetPassword("ResetPassword9"))
		assert.False(t, user.MustChangePassword)
	})
}

func TestUserLockout(t *testing.T) {
	t.Run("locks after max failed attempts", func(t *testing.T) {
		user, err := NewUser("testuser", "Password123", RoleCustomer)
		require.NoError(t, err)

		locked := user.RecordLoginFailure(3, 15*time.Minute)
		assert.False(t, locked)
		locked = user.RecordLoginFailure(3, 15*time.Minute)
		assert.False(t, locked)
		locked = user.RecordLoginFailure(3, 15*time.Minute)
		assert.True(t, locked)

		assert.Equal(t, UserStatusLocked, user.Status)
		assert.True(t, user.IsLocked())
		assert.False(t, user.CanLogin())
	})

	t.Run("lock expires after duration", func(t *testing.T) {
		user, err := NewUser("testuser", "Password123", RoleCustomer)
		require.NoError(t, err)

		require.NoError(t, user.Lock(-time.Minute))
		assert.False(t, user.IsLocked())
		assert.True(t, user.CanLogin())
	})

	t.Run("successful login resets failed attempts", func(t *testing.T) {
		user, err := NewUser("testuser", "Password123", RoleCustomer)
		require.NoError(t, err)

		user.RecordLoginFailure(5, 15*time.Minute)
		user.RecordLoginFailure(5, 15*time.Minute)
		assert.Equal(t, 2, user.FailedAttempts)

		user.RecordLoginSuccess("203.0.113.10")
		assert.Equal(t, 0, user.FailedAttempts)
		assert.Equal(t, "203.0.113.10", user.LastLoginIP)
		assert.NotNil(t, user.LastLoginAt)
	})

	t.Run("unlock restores active status", func(t *testing.T) {
		user, err := NewUser("testuser", "Password123", RoleCustomer)
		require.NoError(t, err)

		require.NoError(t, user.Lock(15*time.Minute))
		require.NoError(t, user.Unlock())
		assert.Equal(t, UserStatusActive, user.Status)
		assert.Equal(t, 0, user.FailedAttempts)
	})

	t.Run("deactivated user cannot login or be locked", func(t *testing.T) {
		user, err := NewUser("testuser", "Password123", RoleCustomer)
		require.NoError(t, err)

		require.NoError(t, user.Deactivate())
		assert.False(t, user.CanLogin())
		assert.Error(t, user.Lock(15*time.Minute))
	})
}
