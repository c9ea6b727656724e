package node_test

import (
	"formbuilder-server/internal/infra/node"
	"log/slog"

	"github.com/google/uuid"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("Node", func() {
	ginkgo.Context("GetNodeInfo", func() {
		ginkgo.It("should return node information with all fields", func() {
			nodeInfo := node.GetNodeInfo()

			gomega.Expect(nodeInfo).ToNot(gomega.BeNil())
			gomega.Expect(nodeInfo.ID).ToNot(gomega.BeEmpty())
			gomega.Expect(nodeInfo.Hostname).ToNot(gomega.BeEmpty())
			gomega.Expect(nodeInfo.Version).To(gomega.Equal("development"))
			gomega.Expect(nodeInfo.CommitHash).To(gomega.Equal("unknown"))
		})

		ginkgo.It("should return a valid UUID for node ID", func() {
			_, err := uuid.Parse(node.GetNodeInfo().ID)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
		})

		ginkgo.It("should return the same node on multiple calls (singleton)", func() {
			nodeInfo1 := node.GetNodeInfo()
			nodeInfo2 := node.GetNodeInfo()
			gomega.Expect(nodeInfo1.ID).To(gomega.Equal(nodeInfo2.ID))
			gomega.Expect(nodeInfo1.Hostname).To(gomega.Equal(nodeInfo2.Hostname))
		})
	})

	ginkgo.Context("LogAttrs", func() {
		ginkgo.It("should carry the node id and version", func() {
			nodeInfo := node.GetNodeInfo()

			gomega.Expect(nodeInfo.LogAttrs()).To(gomega.ContainElements(
				slog.String("node_id", nodeInfo.ID),
				slog.String("version", "development"),
			))
		})
	})
})
