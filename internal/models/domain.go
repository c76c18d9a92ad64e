package models

// DomainKey identifies one of the eight fixed developmental domains. The
// values double as JSON field names and database keys.
type DomainKey string

const (
	DomainCommunicationSkills  DomainKey = "communication_skills"
	DomainEmotionalDevelopment DomainKey = "emotional_development"
	DomainSocialSkills         DomainKey = "social_skills"
	DomainBehavior             DomainKey = "behavior"
	DomainCognitiveSkills      DomainKey = "cognitive_skills"
	DomainSensoryProcessing    DomainKey = "sensory_processing"
	DomainDailyLivingSkills    DomainKey = "daily_living_skills"
	DomainTherapyParticipation DomainKey = "therapy_participation"
)

// OrderedDomains fixes the iteration order used everywhere a report lists
// domains. Monthly recommendations depend on this ordering.
var OrderedDomains = []DomainKey{
	DomainCommunicationSkills,
	DomainEmotionalDevelopment,
	DomainSocialSkills,
	DomainBehavior,
	DomainCognitiveSkills,
	DomainSensoryProcessing,
	DomainDailyLivingSkills,
	DomainTherapyParticipation,
}

// Assessment is one domain's observations within a single session. Ratings
// returns the set leaf values in declaration order; unset items are omitted.
type Assessment interface {
	Ratings() []Rating
}

// VerbalSkills is the verbal sub-group of communication skills.
type VerbalSkills struct {
	SpeakWordsSentences    *Rating `json:"speak_words_sentences,omitempty"`
	ClarityPronunciation   *Rating `json:"clarity_pronunciation,omitempty"`
	ExpressingNeeds        *Rating `json:"expressing_needs,omitempty"`
	TurnTaking             *Rating `json:"turn_taking,omitempty"`
	InitiatingConversation *Rating `json:"initiating_conversation,omitempty"`
	Vocabulary             *Rating `json:"vocabulary,omitempty"`
	FunctionalSpeech       *Rating `json:"functional_speech,omitempty"`
}

func (v *VerbalSkills) Ratings() []Rating {
	if v == nil {
		return nil
	}
	return collect(v.SpeakWordsSentences, v.ClarityPronunciation, v.ExpressingNeeds,
		v.TurnTaking, v.InitiatingConversation, v.Vocabulary, v.FunctionalSpeech)
}

// NonVerbalSkills is the non-verbal sub-group of communication skills.
type NonVerbalSkills struct {
	EyeContact          *Rating `json:"eye_contact,omitempty"`
	Gestures            *Rating `json:"gestures,omitempty"`
	FacialExpressions   *Rating `json:"facial_expressions,omitempty"`
	BodyLanguage        *Rating `json:"body_language,omitempty"`
	FollowingDirections *Rating `json:"following_directions,omitempty"`
}

func (n *NonVerbalSkills) Ratings() []Rating {
	if n == nil {
		return nil
	}
	return collect(n.EyeContact, n.Gestures, n.FacialExpressions, n.BodyLanguage, n.FollowingDirections)
}

// CommunicationSkills nests one level: verbal and non-verbal sub-groups.
type CommunicationSkills struct {
	Verbal    *VerbalSkills    `json:"verbal,omitempty"`
	NonVerbal *NonVerbalSkills `json:"non_verbal,omitempty"`
}

func (c *CommunicationSkills) Ratings() []Rating {
	if c == nil {
		return nil
	}
	return append(c.Verbal.Ratings(), c.NonVerbal.Ratings()...)
}

type EmotionalDevelopment struct {
	IdentifyOwnEmotions     *Rating `json:"identify_own_emotions,omitempty"`
	IdentifyOthersEmotions  *Rating `json:"identify_others_emotions,omitempty"`
	EmotionalRegulation     *Rating `json:"emotional_regulation,omitempty"`
	SensoryOverloadResponse *Rating `json:"sensory_overload_response,omitempty"`
	MeltdownsVsTantrums     *Rating `json:"meltdowns_vs_tantrums,omitempty"`
	CopingStrategies        *Rating `json:"coping_strategies,omitempty"`
}

func (e *EmotionalDevelopment) Ratings() []Rating {
	if e == nil {
		return nil
	}
	return collect(e.IdentifyOwnEmotions, e.IdentifyOthersEmotions, e.EmotionalRegulation,
		e.SensoryOverloadResponse, e.MeltdownsVsTantrums, e.CopingStrategies)
}

type SocialSkills struct {
	PlayingWithPeers         *Rating `json:"playing_with_peers,omitempty"`
	SharingTurnTaking        *Rating `json:"sharing_turn_taking,omitempty"`
	UnderstandingSocialRules *Rating `json:"understanding_social_rules,omitempty"`
	JointAttention           *Rating `json:"joint_attention,omitempty"`
	ImitationSkills          *Rating `json:"imitation_skills,omitempty"`
	ResponseToName           *Rating `json:"response_to_name,omitempty"`
	GroupParticipation       *Rating `json:"group_participation,omitempty"`
}

func (s *SocialSkills) Ratings() []Rating {
	if s == nil {
		return nil
	}
	return collect(s.PlayingWithPeers, s.SharingTurnTaking, s.UnderstandingSocialRules,
		s.JointAttention, s.ImitationSkills, s.ResponseToName, s.GroupParticipation)
}

type Behavior struct {
	Aggression              *Rating `json:"aggression,omitempty"`
	SelfInjury              *Rating `json:"self_injury,omitempty"`
	Eloping                 *Rating `json:"eloping,omitempty"`
	ThrowingObjects         *Rating `json:"throwing_objects,omitempty"`
	BehaviorTriggers        *Rating `json:"behavior_triggers,omitempty"`
	FollowingRoutines       *Rating `json:"following_routines,omitempty"`
	FlexibilityToChange     *Rating `json:"flexibility_to_change,omitempty"`
	ResponseToReinforcement *Rating `json:"response_to_reinforcement,omitempty"`
}

func (b *Behavior) Ratings() []Rating {
	if b == nil {
		return nil
	}
	return collect(b.Aggression, b.SelfInjury, b.Eloping, b.ThrowingObjects,
		b.BehaviorTriggers, b.FollowingRoutines, b.FlexibilityToChange, b.ResponseToReinforcement)
}

type CognitiveSkills struct {
	AttentionSpan             *Rating `json:"attention_span,omitempty"`
	Focus                     *Rating `json:"focus,omitempty"`
	Memory                    *Rating `json:"memory,omitempty"`
	ProblemSolving            *Rating `json:"problem_solving,omitempty"`
	MatchingSortingSequencing *Rating `json:"matching_sorting_sequencing,omitempty"`
	LearningNewConcepts       *Rating `json:"learning_new_concepts,omitempty"`
	BasicAcademics            *Rating `json:"basic_academics,omitempty"`
}

func (c *CognitiveSkills) Ratings() []Rating {
	if c == nil {
		return nil
	}
	return collect(c.AttentionSpan, c.Focus, c.Memory, c.ProblemSolving,
		c.MatchingSortingSequencing, c.LearningNewConcepts, c.BasicAcademics)
}

type SensoryProcessing struct {
	HyperHypoSensitivity     *Rating `json:"hyper_hypo_sensitivity,omitempty"`
	Stimming                 *Rating `json:"stimming,omitempty"`
	SensorySeeking           *Rating `json:"sensory_seeking,omitempty"`
	LightSoundTouchTolerance *Rating `json:"light_sound_touch_tolerance,omitempty"`
	FoodSelectiveness        *Rating `json:"food_selectiveness,omitempty"`
}

func (s *SensoryProcessing) Ratings() []Rating {
	if s == nil {
		return nil
	}
	return collect(s.HyperHypoSensitivity, s.Stimming, s.SensorySeeking,
		s.LightSoundTouchTolerance, s.FoodSelectiveness)
}

type DailyLivingSkills struct {
	EatingIndependently *Rating `json:"eating_independently,omitempty"`
	Dressing            *Rating `json:"dressing,omitempty"`
	ToiletTraining      *Rating `json:"toilet_training,omitempty"`
	BrushingTeeth       *Rating `json:"brushing_teeth,omitempty"`
	HandWashing         *Rating `json:"hand_washing,omitempty"`
	SleepingPatterns    *Rating `json:"sleeping_patterns,omitempty"`
	UsingYesNo          *Rating `json:"using_yes_no,omitempty"`
	SafetyAwareness     *Rating `json:"safety_awareness,omitempty"`
}

func (d *DailyLivingSkills) Ratings() []Rating {
	if d == nil {
		return nil
	}
	return collect(d.EatingIndependently, d.Dressing, d.ToiletTraining, d.BrushingTeeth,
		d.HandWashing, d.SleepingPatterns, d.UsingYesNo, d.SafetyAwareness)
}

type TherapyParticipation struct {
	SittingTolerance          *Rating `json:"sitting_tolerance,omitempty"`
	Responsiveness            *Rating `json:"responsiveness,omitempty"`
	EngagementLevel           *Rating `json:"engagement_level,omitempty"`
	PromptDependency          *Rating `json:"prompt_dependency,omitempty"`
	TransitioningBetweenTasks *Rating `json:"transitioning_between_tasks,omitempty"`
}

func (t *TherapyParticipation) Ratings() []Rating {
	if t == nil {
		return nil
	}
	return collect(t.SittingTolerance, t.Responsiveness, t.EngagementLevel,
		t.PromptDependency, t.TransitioningBetweenTasks)
}

func collect(values ...*Rating) []Rating {
	out := make([]Rating, 0, len(values))
	for _, v := range values {
		if v != nil && *v != "" {
			out = append(out, *v)
		}
	}
	return out
}
