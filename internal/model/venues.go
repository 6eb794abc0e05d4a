package model

// VenueRule maps a venue abbreviation to its classification. Rules live in
// ordered slices, not maps: detection is first-match and precedence follows
// declaration order, so the order here is load-bearing.
type VenueRule struct {
	Abbr        string   `yaml:"abbr"`
	Name        string   `yaml:"name"`
	CCF         CCFGrade `yaml:"ccf"`
	Prestigious bool     `yaml:"prestigious,omitempty"`
	Aliases     []string `yaml:"aliases,omitempty"`
}

// VenueTables holds the ordered detection tables. Conferences are scanned
// before journals.
type VenueTables struct {
	Conferences []VenueRule `yaml:"conferences"`
	Journals    []VenueRule `yaml:"journals"`
}

// DefaultVenueTables returns the built-in conference and journal tables.
func DefaultVenueTables() VenueTables {
	return VenueTables{
		Conferences: []VenueRule{
			// CCF A
			{Abbr: "CVPR", Name: "IEEE/CVF Conference on Computer Vision and Pattern Recognition", CCF: CCFGradeA},
			{Abbr: "ICCV", Name: "International Conference on Computer Vision", CCF: CCFGradeA},
			{Abbr: "ECCV", Name: "European Conference on Computer Vision", CCF: CCFGradeA},
			{Abbr: "ICML", Name: "International Conference on Machine Learning", CCF: CCFGradeA},
			{Abbr: "NeurIPS", Name: "Neural Information Processing Systems", CCF: CCFGradeA, Aliases: []string{"NIPS"}},
			{Abbr: "ICLR", Name: "International Conference on Learning Representations", CCF: CCFGradeA},
			{Abbr: "AAAI", Name: "AAAI Conference on Artificial Intelligence", CCF: CCFGradeA},
			{Abbr: "IJCAI", Name: "International Joint Conference on Artificial Intelligence", CCF: CCFGradeA},
			{Abbr: "ACL", Name: "Annual Meeting of the Association for Computational Linguistics", CCF: CCFGradeA},
			{Abbr: "EMNLP", Name: "Conference on Empirical Methods in Natural Language Processing", CCF: CCFGradeA},
			{Abbr: "NAACL", Name: "North American Chapter of ACL", CCF: CCFGradeA},
			{Abbr: "SIGIR", Name: "Special Interest Group on Information Retrieval", CCF: CCFGradeA},
			{Abbr: "COLT", Name: "Conference on Learning Theory", CCF: CCFGradeA},
			{Abbr: "STOC", Name: "ACM Symposium on Theory of Computing", CCF: CCFGradeA},
			{Abbr: "FOCS", Name: "IEEE Symposium on Foundations of Computer Science", CCF: CCFGradeA},
			// CCF B
			{Abbr: "ICPR", Name: "International Conference on Pattern Recognition", CCF: CCFGradeB},
			{Abbr: "IJCNN", Name: "International Joint Conference on Neural Networks", CCF: CCFGradeB},
			{Abbr: "ICRA", Name: "IEEE International Conference on Robotics and Automation", CCF: CCFGradeB},
			{Abbr: "IROS", Name: "IEEE/RSJ International Conference on Intelligent Robots and Systems", CCF: CCFGradeB},
			{Abbr: "KDD", Name: "ACM SIGKDD Conference on Knowledge Discovery and Data Mining", CCF: CCFGradeB},
			{Abbr: "SODA", Name: "Symposium on Discrete Algorithms", CCF: CCFGradeB},
			// CCF C
			{Abbr: "CAI", Name: "China AI Conference", CCF: CCFGradeC},
		},
		Journals: []VenueRule{
			// CCF A
			{Abbr: "JMLR", Name: "Journal of Machine Learning Research", CCF: CCFGradeA},
			{Abbr: "TPAMI", Name: "IEEE Transactions on Pattern Analysis and Machine Intelligence", CCF: CCFGradeA},
			{Abbr: "IJCV", Name: "International Journal of Computer Vision", CCF: CCFGradeA},
			// CCF B
			{Abbr: "TNN", Name: "IEEE Transactions on Neural Networks", CCF: CCFGradeB},
			{Abbr: "TSMC", Name: "IEEE Transactions on Systems, Man, and Cybernetics", CCF: CCFGradeB},
			{Abbr: "JAIR", Name: "Journal of Artificial Intelligence Research", CCF: CCFGradeB},
			// Flagged even though outside the CCF lists
			{Abbr: "Nature", Name: "Nature", CCF: CCFGradeNone, Prestigious: true},
			{Abbr: "Science", Name: "Science", CCF: CCFGradeNone, Prestigious: true},
		},
	}
}
