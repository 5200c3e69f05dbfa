package auth

import (
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("Roles", func() {
	ginkgo.Describe("PermissionsOf", func() {
		ginkgo.It("should give every role a non-empty fixed set", func() {
			for _, role := range []Role{RoleAdmin, RoleEmployee, RoleSupervisor} {
				gomega.Expect(PermissionsOf(role)).ToNot(gomega.BeEmpty())
			}
		})

		ginkgo.It("should return nil for an unknown role", func() {
			gomega.Expect(PermissionsOf(Role("MANAGER"))).To(gomega.BeNil())
		})

		ginkgo.It("should hand out copies, not the backing table", func() {
			perms := PermissionsOf(RoleAdmin)
			perms[0] = Permission("TAMPERED")
			gomega.Expect(PermissionsOf(RoleAdmin)[0]).To(gomega.Equal(PermManageEmployee))
		})

		ginkgo.It("should keep the role sets disjoint where the model says so", func() {
			gomega.Expect(HasPermission(RoleAdmin, PermManageEmployee)).To(gomega.BeTrue())
			gomega.Expect(HasPermission(RoleAdmin, PermAssignSupervisor)).To(gomega.BeTrue())
			gomega.Expect(HasPermission(RoleAdmin, PermRegisterAttendance)).To(gomega.BeFalse())

			gomega.Expect(HasPermission(RoleEmployee, PermCreateRequest)).To(gomega.BeTrue())
			gomega.Expect(HasPermission(RoleEmployee, PermManageRequest)).To(gomega.BeFalse())

			gomega.Expect(HasPermission(RoleSupervisor, PermManageRequest)).To(gomega.BeTrue())
			gomega.Expect(HasPermission(RoleSupervisor, PermCalculateSalaries)).To(gomega.BeTrue())
			gomega.Expect(HasPermission(RoleSupervisor, PermManageEmployee)).To(gomega.BeFalse())
		})
	})

	ginkgo.Describe("AuthorityTags", func() {
		ginkgo.It("should prefix the role and each permission", func() {
			tags := AuthorityTags(RoleEmployee)

			gomega.Expect(tags).To(gomega.ContainElement("ROLE_EMPLOYEE"))
			gomega.Expect(tags).To(gomega.ContainElement("ROLE_ADREC03_CONSULT_SECTOR"))
			gomega.Expect(tags).To(gomega.ContainElement("ROLE_ADREC05_REGISTER_ATTENDANCE"))
			gomega.Expect(tags).To(gomega.ContainElement("ROLE_ADREC06_CREATE_REQUEST"))
			gomega.Expect(tags).To(gomega.HaveLen(4))
		})

		ginkgo.It("should return nil for an unknown role", func() {
			gomega.Expect(AuthorityTags(Role("MANAGER"))).To(gomega.BeNil())
		})
	})

	ginkgo.Describe("RoleFromString", func() {
		ginkgo.It("should parse case-insensitively", func() {
			role, err := RoleFromString("supervisor")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(role).To(gomega.Equal(RoleSupervisor))

			role, err = RoleFromString(" Admin ")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(role).To(gomega.Equal(RoleAdmin))
		})

		ginkgo.It("should reject anything outside the enumeration", func() {
			_, err := RoleFromString("MANAGER")
			gomega.Expect(err).To(gomega.HaveOccurred())
		})
	})
})
