package github

// Inner field selections, wrapped in viewer{}/user(login:){} by the client.
const (
	profileFields = `createdAt`

	contributionsFields = `contributionsCollection(from: $from, to: $to) {
		totalCommitContributions
		totalPullRequestContributions
		totalPullRequestReviewContributions
		totalIssueContributions
		contributionCalendar {
			weeks {
				contributionDays {
					date
					contributionCount
				}
			}
		}
		commitContributionsByRepository(maxRepositories: 100) {
			repository {
				isFork
				languages(first: 8, orderBy: {field: SIZE, direction: DESC}) {
					edges {
						size
						node {
							name
							color
						}
					}
				}
			}
		}
	}`

	repositoriesFields = `repositories(ownerAffiliations: OWNER, first: 100, after: $cursor) {
		pageInfo {
			hasNextPage
			endCursor
		}
		nodes {
			stargazerCount
			createdAt
			isFork
		}
	}`
)
