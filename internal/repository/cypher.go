package repository

var schemaCypher = []string{
	`CREATE CONSTRAINT buyer_id IF NOT EXISTS FOR (b:Buyer) REQUIRE b.buyerId IS UNIQUE`,
	`CREATE CONSTRAINT seller_id IF NOT EXISTS FOR (s:Seller) REQUIRE s.sellerId IS UNIQUE`,
	`CREATE CONSTRAINT deal_id IF NOT EXISTS FOR (d:Deal) REQUIRE d.dealId IS UNIQUE`,
	`CREATE CONSTRAINT message_key IF NOT EXISTS FOR (m:Message) REQUIRE (m.dealId, m.messageId) IS UNIQUE`,
	`CREATE CONSTRAINT document_key IF NOT EXISTS FOR (doc:Document) REQUIRE (doc.dealId, doc.documentId) IS UNIQUE`,
}

const upsertBuyerCypher = `
MERGE (b:Buyer {buyerId: $buyerId})
SET b += $props
RETURN b.buyerId AS buyerId
`

const upsertSellerCypher = `
MERGE (s:Seller {sellerId: $sellerId})
SET s += $props
RETURN s.sellerId AS sellerId
`

const upsertDealCypher = `
MERGE (d:Deal {dealId: $dealId})
SET d += $props
WITH d
OPTIONAL MATCH (d)-[old:HAS_BUYER|HAS_SELLER]->()
DELETE old
WITH DISTINCT d
MERGE (b:Buyer {buyerId: $buyerId})
MERGE (s:Seller {sellerId: $sellerId})
MERGE (d)-[:HAS_BUYER]->(b)
MERGE (d)-[:HAS_SELLER]->(s)
`

const upsertDocumentsCypher = `
MATCH (d:Deal {dealId: $dealId})
FOREACH (doc IN $documents |
	MERGE (n:Document {dealId: $dealId, documentId: doc.id})
	SET n += doc.props
	MERGE (d)-[:HAS_DOCUMENT]->(n)
)
`

const upsertMessagesCypher = `
MATCH (d:Deal {dealId: $dealId})
FOREACH (msg IN $messages |
	MERGE (n:Message {dealId: $dealId, messageId: msg.id})
	SET n += msg.props
	MERGE (d)-[:HAS_MESSAGE]->(n)
)
`

const upsertTasksCypher = `
MATCH (d:Deal {dealId: $dealId})
FOREACH (task IN $tasks |
	MERGE (n:Task {dealId: $dealId, taskId: task.id})
	SET n += task.props
	MERGE (d)-[:HAS_TASK]->(n)
)
`

const upsertMilestonesCypher = `
MATCH (d:Deal {dealId: $dealId})
UNWIND $milestones AS ms
MERGE (m:Milestone {dealId: $dealId, milestoneId: ms.id})
SET m += ms.props
MERGE (d)-[:HAS_MILESTONE]->(m)
WITH m, ms
OPTIONAL MATCH (m)-[old:INCLUDES]->(:Task)
DELETE old
WITH DISTINCT m, ms
UNWIND range(0, size(ms.taskIds) - 1) AS idx
MATCH (t:Task {dealId: $dealId, taskId: ms.taskIds[idx]})
MERGE (m)-[inc:INCLUDES]->(t)
SET inc.position = idx
`

const appendMessageCypher = `
MATCH (d:Deal {dealId: $dealId})
CREATE (d)-[:HAS_MESSAGE]->(m:Message {dealId: $dealId, messageId: $id})
SET m += $props,
    m.position = COUNT { (d)-[:HAS_MESSAGE]->(:Message) } - 1,
    d.updatedAt = CASE WHEN $updatedAt > d.updatedAt THEN $updatedAt ELSE d.updatedAt END
RETURN m.messageId AS messageId
`

const addDocumentCypher = `
MATCH (d:Deal {dealId: $dealId})
CREATE (d)-[:HAS_DOCUMENT]->(doc:Document {dealId: $dealId, documentId: $id})
SET doc += $props,
    doc.position = COUNT { (d)-[:HAS_DOCUMENT]->(:Document) } - 1,
    d.updatedAt = CASE WHEN $updatedAt > d.updatedAt THEN $updatedAt ELSE d.updatedAt END
RETURN doc.documentId AS documentId
`

const listBuyersCypher = `
MATCH (b:Buyer)
RETURN b.buyerId AS id, b.name AS name, b.company AS company, b.industry AS industry,
       b.experience AS experience, b.location AS location, b.avatar AS avatar, b.bio AS bio,
       b.verificationStatus AS verificationStatus, b.responseRate AS responseRate,
       b.averageResponseTime AS averageResponseTime, b.completedDeals AS completedDeals,
       b.rating AS rating, b.reviews AS reviews,
       b.investmentMin AS investmentMin, b.investmentMax AS investmentMax,
       b.preferredIndustries AS preferredIndustries, b.dealExperience AS dealExperience
ORDER BY id
`

const listSellersCypher = `
MATCH (s:Seller)
RETURN s.sellerId AS id, s.name AS name, s.company AS company, s.industry AS industry,
       s.experience AS experience, s.location AS location, s.avatar AS avatar, s.bio AS bio,
       s.verificationStatus AS verificationStatus, s.responseRate AS responseRate,
       s.averageResponseTime AS averageResponseTime, s.completedDeals AS completedDeals,
       s.rating AS rating, s.reviews AS reviews,
       s.businessValue AS businessValue, s.annualRevenue AS annualRevenue,
       s.profitMargin AS profitMargin, s.employeeCount AS employeeCount,
       s.yearsInBusiness AS yearsInBusiness, s.reasonForSelling AS reasonForSelling,
       s.timeline AS timeline
ORDER BY id
`

const dealHeaderReturn = `
OPTIONAL MATCH (d)-[:HAS_BUYER]->(b:Buyer)
OPTIONAL MATCH (d)-[:HAS_SELLER]->(s:Seller)
RETURN d.dealId AS id, b.buyerId AS buyerId, s.sellerId AS sellerId, d.status AS status,
       d.createdAt AS createdAt, d.updatedAt AS updatedAt, d.businessValue AS businessValue,
       d.industry AS industry, d.location AS location, d.timeline AS timeline
`

const listDealsCypher = `
MATCH (d:Deal)` + dealHeaderReturn + `ORDER BY id
`

const getDealCypher = `
MATCH (d:Deal {dealId: $dealId})` + dealHeaderReturn

// Child queries take a list of deal ids so one round trip serves a whole page.

const dealDocumentsCypher = `
MATCH (d:Deal)-[:HAS_DOCUMENT]->(doc:Document)
WHERE d.dealId IN $dealIds
RETURN d.dealId AS dealId, doc.documentId AS id, doc.name AS name, doc.category AS category,
       doc.url AS url, doc.uploadedAt AS uploadedAt, doc.uploadedBy AS uploadedBy,
       doc.status AS status, doc.hasAnalysis AS hasAnalysis, doc.analysisSummary AS analysisSummary,
       doc.analysisRevenue AS analysisRevenue, doc.analysisProfit AS analysisProfit,
       doc.analysisGrowth AS analysisGrowth, doc.analysisRisk AS analysisRisk,
       doc.analysisInsights AS analysisInsights,
       doc.analysisRecommendations AS analysisRecommendations,
       doc.analysisConfidence AS analysisConfidence
ORDER BY dealId, doc.position, doc.uploadedAt
`

const dealMessagesCypher = `
MATCH (d:Deal)-[:HAS_MESSAGE]->(m:Message)
WHERE d.dealId IN $dealIds
RETURN d.dealId AS dealId, m.messageId AS id, m.senderId AS senderId, m.content AS content,
       m.timestamp AS timestamp, m.kind AS kind, m.attachments AS attachments
ORDER BY dealId, m.position, m.timestamp
`

const dealTasksCypher = `
MATCH (d:Deal)-[:HAS_TASK]->(t:Task)
WHERE d.dealId IN $dealIds
RETURN d.dealId AS dealId, t.taskId AS id, t.title AS title, t.description AS description,
       t.assignedTo AS assignedTo, t.dueDate AS dueDate, t.status AS status,
       t.priority AS priority, t.category AS category
ORDER BY dealId, t.position
`

const dealMilestonesCypher = `
MATCH (d:Deal)-[:HAS_MILESTONE]->(m:Milestone)
WHERE d.dealId IN $dealIds
OPTIONAL MATCH (m)-[inc:INCLUDES]->(t:Task)
WITH d, m, t, inc ORDER BY inc.position
WITH d, m, [x IN collect(t.taskId) WHERE x IS NOT NULL] AS taskIds
RETURN d.dealId AS dealId, m.milestoneId AS id, m.title AS title, m.description AS description,
       m.dueDate AS dueDate, m.status AS status, taskIds
ORDER BY dealId, m.position
`
