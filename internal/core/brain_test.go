package core_test

import (
	"context"
	"errors"
	"strings"

	"secondbrain/internal/core"
	"secondbrain/internal/core/fake"
	"secondbrain/internal/repository"
	tokenIssuer "secondbrain/pkg/jwt"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var _ = Describe("Brain", func() {
	var (
		fakeRepo   *fake.Repository
		fakeJWT    *fake.TokenIssuer
		fakeLogger *zap.SugaredLogger
		ctx        context.Context

		brain *core.Brain

		fakeErr error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeJWT = new(fake.TokenIssuer)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		brain = core.NewBrain(fakeLogger, fakeRepo, fakeJWT)

		fakeErr = errors.New("fake error")
	})

	Describe("Signup", func() {
		var (
			msg core.SignupMessage
			err error
		)

		BeforeEach(func() {
			msg = core.SignupMessage{
				Name:     "Ann",
				Username: "ann@x.com",
				Password: "Abcdef1!",
			}
			fakeRepo.GetUserByUsernameReturns(repository.User{}, repository.ErrUserNotFound)
			fakeRepo.CreateUserReturns(repository.User{ID: uuid.NewString(), Username: msg.Username}, nil)
		})

		JustBeforeEach(func() {
			err = brain.Signup(ctx, msg)
		})

		When("the username is free", func() {
			It("creates the user with a bcrypt hash of the password", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeRepo.CreateUserCallCount()).To(Equal(1))

				_, name, username, hash := fakeRepo.CreateUserArgsForCall(0)
				Expect(name).To(Equal("Ann"))
				Expect(username).To(Equal("ann@x.com"))
				Expect(bcrypt.CompareHashAndPassword([]byte(hash), []byte("Abcdef1!"))).To(Succeed())
			})
		})

		When("the username is already taken", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{ID: "existing"}, nil)
			})

			It("returns ErrUsernameTaken without creating anything", func() {
				Expect(err).To(MatchError(core.ErrUsernameTaken))
				Expect(fakeRepo.CreateUserCallCount()).To(Equal(0))
			})
		})

		When("the user lookup fails", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{}, fakeErr)
			})

			It("wraps the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeRepo.CreateUserCallCount()).To(Equal(0))
			})
		})

		When("user creation fails", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserReturns(repository.User{}, fakeErr)
			})

			It("wraps the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("Signin", func() {
		var (
			msg      core.SigninMessage
			token    string
			err      error
			userId   string
			genToken *jwt.Token
		)

		BeforeEach(func() {
			userId = uuid.NewString()
			msg = core.SigninMessage{
				Username: "ann@x.com",
				Password: "Abcdef1!",
			}
			hash, hashErr := bcrypt.GenerateFromPassword([]byte(msg.Password), bcrypt.MinCost)
			Expect(hashErr).NotTo(HaveOccurred())

			fakeRepo.GetUserByUsernameReturns(repository.User{
				ID:           userId,
				Username:     msg.Username,
				PasswordHash: string(hash),
			}, nil)

			genToken = jwt.New(jwt.SigningMethodHS512)
			fakeJWT.GenerateReturns(genToken)
			fakeJWT.SignReturns("signed-token", nil)
		})

		JustBeforeEach(func() {
			token, err = brain.Signin(ctx, msg)
		})

		When("credentials are correct", func() {
			It("returns a signed token carrying the user id", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(token).To(Equal("signed-token"))

				Expect(fakeJWT.GenerateCallCount()).To(Equal(1))
				info := fakeJWT.GenerateArgsForCall(0)
				Expect(info).To(Equal(tokenIssuer.TokenInfo{
					Username:   "ann@x.com",
					Subject:    userId,
					Expiration: 24,
				}))

				Expect(fakeJWT.SignCallCount()).To(Equal(1))
				Expect(fakeJWT.SignArgsForCall(0)).To(Equal(genToken))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("returns ErrUserNotFound", func() {
				Expect(err).To(MatchError(core.ErrUserNotFound))
				Expect(token).To(BeEmpty())
			})
		})

		When("the password is wrong", func() {
			BeforeEach(func() {
				msg.Password = "Wrongpw1!"
			})

			It("returns ErrIncorrectPassword", func() {
				Expect(err).To(MatchError(core.ErrIncorrectPassword))
				Expect(fakeJWT.GenerateCallCount()).To(Equal(0))
			})
		})

		When("signing fails", func() {
			BeforeEach(func() {
				fakeJWT.SignReturns("", fakeErr)
			})

			It("wraps the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("AddContent", func() {
		var (
			msg    core.ContentMessage
			userId string
			err    error
		)

		BeforeEach(func() {
			userId = uuid.NewString()
			msg = core.ContentMessage{
				Link:        "https://go.dev",
				Title:       "Go",
				Description: "language homepage",
				Tags:        []string{"lang", "docs"},
			}
			fakeRepo.FindOrCreateTagsReturns([]repository.Tag{
				{ID: "t1", Title: "lang"},
				{ID: "t2", Title: "docs"},
			}, nil)
			fakeRepo.CreateContentReturns(repository.Content{ID: uuid.NewString()}, nil)
		})

		JustBeforeEach(func() {
			err = brain.AddContent(ctx, userId, msg)
		})

		It("resolves tag titles and persists the content for the owner", func() {
			Expect(err).NotTo(HaveOccurred())

			Expect(fakeRepo.FindOrCreateTagsCallCount()).To(Equal(1))
			_, titles := fakeRepo.FindOrCreateTagsArgsForCall(0)
			Expect(titles).To(Equal([]string{"lang", "docs"}))

			Expect(fakeRepo.CreateContentCallCount()).To(Equal(1))
			_, content := fakeRepo.CreateContentArgsForCall(0)
			Expect(content.Link).To(Equal("https://go.dev"))
			Expect(content.Title).To(Equal("Go"))
			Expect(content.Description).To(Equal("language homepage"))
			Expect(content.UserID).To(Equal(userId))
			Expect(content.Tags).To(HaveLen(2))
		})

		When("tag resolution fails", func() {
			BeforeEach(func() {
				fakeRepo.FindOrCreateTagsReturns(nil, fakeErr)
			})

			It("wraps the error and creates nothing", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeRepo.CreateContentCallCount()).To(Equal(0))
			})
		})

		When("persisting fails", func() {
			BeforeEach(func() {
				fakeRepo.CreateContentReturns(repository.Content{}, fakeErr)
			})

			It("wraps the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("ListContent", func() {
		var (
			userId string
			view   core.BrainView
			err    error
		)

		BeforeEach(func() {
			userId = uuid.NewString()
			fakeRepo.GetUserByIDReturns(repository.User{
				ID:           userId,
				Name:         "Ann",
				Username:     "ann@x.com",
				PasswordHash: "$2a$10$secret",
			}, nil)
		})

		JustBeforeEach(func() {
			view, err = brain.ListContent(ctx, userId)
		})

		When("the owner has content", func() {
			BeforeEach(func() {
				fakeRepo.GetContentByOwnerReturns([]repository.Content{
					{
						ID:    "c1",
						Link:  "https://go.dev",
						Title: "Go",
						Tags:  []repository.Tag{{ID: "t1", Title: "lang"}},
					},
				}, nil)
			})

			It("returns assembled records with owner and tag titles", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(view.Profile).To(BeNil())
				Expect(view.Content).To(HaveLen(1))
				Expect(view.Content[0].Tags).To(Equal([]string{"lang"}))
				Expect(view.Content[0].Owner).To(Equal(core.OwnerRecord{
					Name:     "Ann",
					Username: "ann@x.com",
				}))
			})
		})

		When("the owner has no content", func() {
			BeforeEach(func() {
				fakeRepo.GetContentByOwnerReturns([]repository.Content{}, nil)
			})

			It("falls back to the bare profile without the password hash", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(view.Content).To(BeEmpty())
				Expect(view.Profile).NotTo(BeNil())
				Expect(*view.Profile).To(Equal(core.OwnerRecord{
					Name:     "Ann",
					Username: "ann@x.com",
				}))
			})
		})

		When("the content fetch fails", func() {
			BeforeEach(func() {
				fakeRepo.GetContentByOwnerReturns(nil, fakeErr)
			})

			It("wraps the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("RemoveContent", func() {
		var (
			userId string
			err    error
		)

		BeforeEach(func() {
			userId = uuid.NewString()
			fakeRepo.DeleteContentReturns(nil)
		})

		JustBeforeEach(func() {
			err = brain.RemoveContent(ctx, userId, "content-1")
		})

		It("deletes with both the content id and the owner id", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeRepo.DeleteContentCallCount()).To(Equal(1))
			_, contentId, ownerId := fakeRepo.DeleteContentArgsForCall(0)
			Expect(contentId).To(Equal("content-1"))
			Expect(ownerId).To(Equal(userId))
		})

		When("the delete fails", func() {
			BeforeEach(func() {
				fakeRepo.DeleteContentReturns(fakeErr)
			})

			It("wraps the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("EnableShare", func() {
		var (
			userId string
			link   string
			err    error
		)

		BeforeEach(func() {
			userId = uuid.NewString()
		})

		JustBeforeEach(func() {
			link, err = brain.EnableShare(ctx, userId)
		})

		When("a share link already exists", func() {
			BeforeEach(func() {
				fakeRepo.GetShareLinkByOwnerReturns(repository.ShareLink{
					Token:  "abc123XYZ9",
					UserID: userId,
				}, nil)
			})

			It("returns the existing path without minting a new token", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(link).To(Equal("/brain/abc123XYZ9"))
				Expect(fakeRepo.CreateShareLinkCallCount()).To(Equal(0))
			})

			It("returns the same path on repeated calls", func() {
				again, againErr := brain.EnableShare(ctx, userId)
				Expect(againErr).NotTo(HaveOccurred())
				Expect(again).To(Equal(link))
			})
		})

		When("no share link exists yet", func() {
			BeforeEach(func() {
				fakeRepo.GetShareLinkByOwnerReturns(repository.ShareLink{}, repository.ErrShareLinkNotFound)
				fakeRepo.CreateShareLinkStub = func(_ context.Context, owner, token string) (repository.ShareLink, error) {
					return repository.ShareLink{Token: token, UserID: owner}, nil
				}
			})

			It("mints a 10 character alphanumeric token", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeRepo.CreateShareLinkCallCount()).To(Equal(1))

				_, owner, token := fakeRepo.CreateShareLinkArgsForCall(0)
				Expect(owner).To(Equal(userId))
				Expect(token).To(HaveLen(10))
				Expect(token).To(MatchRegexp(`^[a-zA-Z0-9]{10}$`))
				Expect(link).To(Equal("/brain/" + token))
			})
		})

		When("the lookup fails", func() {
			BeforeEach(func() {
				fakeRepo.GetShareLinkByOwnerReturns(repository.ShareLink{}, fakeErr)
			})

			It("wraps the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeRepo.CreateShareLinkCallCount()).To(Equal(0))
			})
		})
	})

	Describe("DisableShare", func() {
		var err error

		JustBeforeEach(func() {
			err = brain.DisableShare(ctx, "owner-1")
		})

		It("deletes all share links for the owner", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeRepo.DeleteShareLinksByOwnerCallCount()).To(Equal(1))
			_, owner := fakeRepo.DeleteShareLinksByOwnerArgsForCall(0)
			Expect(owner).To(Equal("owner-1"))
		})

		When("the delete fails", func() {
			BeforeEach(func() {
				fakeRepo.DeleteShareLinksByOwnerReturns(fakeErr)
			})

			It("wraps the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("ResolveShare", func() {
		var (
			userId string
			view   core.BrainView
			err    error
		)

		BeforeEach(func() {
			userId = uuid.NewString()
			fakeRepo.GetUserByIDReturns(repository.User{
				ID:       userId,
				Name:     "Ann",
				Username: "ann@x.com",
			}, nil)
			fakeRepo.GetContentByOwnerReturns([]repository.Content{
				{
					ID:    "c1",
					Link:  "https://go.dev",
					Title: "Go",
					Tags:  []repository.Tag{{ID: "t1", Title: "lang"}},
				},
			}, nil)
		})

		JustBeforeEach(func() {
			view, err = brain.ResolveShare(ctx, "abc123XYZ9")
		})

		When("the token is known", func() {
			BeforeEach(func() {
				fakeRepo.GetShareLinkByTokenReturns(repository.ShareLink{
					Token:  "abc123XYZ9",
					UserID: userId,
				}, nil)
			})

			It("returns the owner's assembled view", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(view.Content).To(HaveLen(1))
				Expect(view.Content[0].Owner.Username).To(Equal("ann@x.com"))
			})

			It("matches the owner's own list exactly", func() {
				ownView, ownErr := brain.ListContent(ctx, userId)
				Expect(ownErr).NotTo(HaveOccurred())
				Expect(view).To(Equal(ownView))
			})
		})

		When("the token is unknown", func() {
			BeforeEach(func() {
				fakeRepo.GetShareLinkByTokenReturns(repository.ShareLink{}, repository.ErrShareLinkNotFound)
			})

			It("returns ErrShareLinkNotFound", func() {
				Expect(err).To(MatchError(core.ErrShareLinkNotFound))
				Expect(fakeRepo.GetContentByOwnerCallCount()).To(Equal(0))
			})
		})

		When("the token lookup fails", func() {
			BeforeEach(func() {
				fakeRepo.GetShareLinkByTokenReturns(repository.ShareLink{}, fakeErr)
			})

			It("wraps the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("ListTags", func() {
		When("tags exist", func() {
			BeforeEach(func() {
				fakeRepo.GetAllTagsReturns([]repository.Tag{
					{ID: "t1", Title: "lang"},
					{ID: "t2", Title: "docs"},
				}, nil)
			})

			It("returns them as records", func() {
				tags, err := brain.ListTags(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(tags).To(Equal([]core.TagRecord{
					{ID: "t1", Title: "lang"},
					{ID: "t2", Title: "docs"},
				}))
			})
		})

		When("the fetch fails", func() {
			BeforeEach(func() {
				fakeRepo.GetAllTagsReturns(nil, fakeErr)
			})

			It("wraps the error", func() {
				_, err := brain.ListTags(ctx)
				Expect(err).To(MatchError(fakeErr))
				Expect(strings.Contains(err.Error(), "get all tags")).To(BeTrue())
			})
		})
	})
})
